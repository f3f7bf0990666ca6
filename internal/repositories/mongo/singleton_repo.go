package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gepres/portafolio-2025-sub000/internal/models"
	"github.com/gepres/portafolio-2025-sub000/internal/utils"
)

// Profile and contact are singleton documents addressed by the fixed key
// "main". Upsert creates the document on first write and merge-updates it
// afterwards, stamping updated_at either way.

type ProfileRepository interface {
	Get(ctx context.Context) (*models.ProfileInfo, error)
	Upsert(ctx context.Context, patch models.ProfilePatch) error
	SetCVURL(ctx context.Context, url string) error
}

type profileRepo struct {
	col *mongo.Collection
}

func NewProfileRepo(db *mongo.Database) ProfileRepository {
	return &profileRepo{col: db.Collection("profile")}
}

func (r *profileRepo) Get(ctx context.Context) (*models.ProfileInfo, error) {
	var p models.ProfileInfo
	err := r.col.FindOne(ctx, bson.M{"_id": models.SingletonKey}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Upsert(ctx context.Context, patch models.ProfilePatch) error {
	set := setDoc(patch)
	set["updated_at"] = time.Now().UTC()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": models.SingletonKey},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *profileRepo) SetCVURL(ctx context.Context, url string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": models.SingletonKey},
		bson.M{"$set": bson.M{"cv_url": url, "updated_at": time.Now().UTC()}},
		options.Update().SetUpsert(true),
	)
	return err
}

type ContactRepository interface {
	Get(ctx context.Context) (*models.ContactInfo, error)
	Upsert(ctx context.Context, patch models.ContactPatch) error
}

type contactRepo struct {
	col *mongo.Collection
}

func NewContactRepo(db *mongo.Database) ContactRepository {
	return &contactRepo{col: db.Collection("contact")}
}

func (r *contactRepo) Get(ctx context.Context) (*models.ContactInfo, error) {
	var c models.ContactInfo
	err := r.col.FindOne(ctx, bson.M{"_id": models.SingletonKey}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contactRepo) Upsert(ctx context.Context, patch models.ContactPatch) error {
	set := setDoc(patch)
	set["updated_at"] = time.Now().UTC()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": models.SingletonKey},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	return err
}
