package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gepres/portafolio-2025-sub000/internal/models"
	"github.com/gepres/portafolio-2025-sub000/internal/utils"
)

type ExperienceRepository interface {
	List(ctx context.Context) ([]models.Experience, error)
	Get(ctx context.Context, id string) (*models.Experience, error)
	Create(ctx context.Context, e *models.Experience) error
	Update(ctx context.Context, id string, patch models.ExperiencePatch) error
	Delete(ctx context.Context, id string) error
}

type experienceRepo struct {
	col *mongo.Collection
}

func NewExperienceRepo(db *mongo.Database) ExperienceRepository {
	return &experienceRepo{col: db.Collection("experiences")}
}

func (r *experienceRepo) List(ctx context.Context) ([]models.Experience, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Experience
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return models.SortExperiences(out), nil
}

func (r *experienceRepo) Get(ctx context.Context, id string) (*models.Experience, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ErrNotFound
	}

	var e models.Experience
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *experienceRepo) Create(ctx context.Context, e *models.Experience) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = oid
	}
	return nil
}

func (r *experienceRepo) Update(ctx context.Context, id string, patch models.ExperiencePatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ErrNotFound
	}

	set := setDoc(patch)
	if len(set) == 0 {
		return nil
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *experienceRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
