package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gepres/portafolio-2025-sub000/internal/models"
	"github.com/gepres/portafolio-2025-sub000/internal/utils"
)

type SkillRepository interface {
	List(ctx context.Context) ([]models.Skill, error)
	Get(ctx context.Context, id string) (*models.Skill, error)
	Create(ctx context.Context, s *models.Skill) error
	Update(ctx context.Context, id string, patch models.SkillPatch) error
	Delete(ctx context.Context, id string) error
}

type skillRepo struct {
	col *mongo.Collection
}

func NewSkillRepo(db *mongo.Database) SkillRepository {
	return &skillRepo{col: db.Collection("skills")}
}

func (r *skillRepo) List(ctx context.Context) ([]models.Skill, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Skill
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return models.SortSkills(out), nil
}

func (r *skillRepo) Get(ctx context.Context, id string) (*models.Skill, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ErrNotFound
	}

	var s models.Skill
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *skillRepo) Create(ctx context.Context, s *models.Skill) error {
	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid
	}
	return nil
}

func (r *skillRepo) Update(ctx context.Context, id string, patch models.SkillPatch) error {
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

func (r *skillRepo) Delete(ctx context.Context, id string) error {
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
