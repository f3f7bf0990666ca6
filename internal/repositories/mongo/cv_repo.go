package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gepres/portafolio-2025-sub000/internal/models"
)

type CVEducationRepository interface {
	List(ctx context.Context) ([]models.CVEducation, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, e *models.CVEducation) error
	Update(ctx context.Context, id string, patch models.CVEducationPatch) error
	Delete(ctx context.Context, id string) error
}

type cvEducationRepo struct {
	col *mongo.Collection
}

func NewCVEducationRepo(db *mongo.Database) CVEducationRepository {
	return &cvEducationRepo{col: db.Collection("cv_education")}
}

func (r *cvEducationRepo) List(ctx context.Context) ([]models.CVEducation, error) {
	all, err := findAll[models.CVEducation](ctx, r.col)
	if err != nil {
		return nil, err
	}
	return models.SortByOrder(all), nil
}

func (r *cvEducationRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *cvEducationRepo) Create(ctx context.Context, e *models.CVEducation) error {
	oid, err := insertOne(ctx, r.col, e)
	if err != nil {
		return err
	}
	e.ID = oid
	return nil
}

func (r *cvEducationRepo) Update(ctx context.Context, id string, patch models.CVEducationPatch) error {
	return updateByID(ctx, r.col, id, patch)
}

func (r *cvEducationRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

type CVLanguageRepository interface {
	List(ctx context.Context) ([]models.CVLanguage, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, l *models.CVLanguage) error
	Update(ctx context.Context, id string, patch models.CVLanguagePatch) error
	Delete(ctx context.Context, id string) error
}

type cvLanguageRepo struct {
	col *mongo.Collection
}

func NewCVLanguageRepo(db *mongo.Database) CVLanguageRepository {
	return &cvLanguageRepo{col: db.Collection("cv_languages")}
}

func (r *cvLanguageRepo) List(ctx context.Context) ([]models.CVLanguage, error) {
	all, err := findAll[models.CVLanguage](ctx, r.col)
	if err != nil {
		return nil, err
	}
	return models.SortLanguagesByOrder(all), nil
}

func (r *cvLanguageRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *cvLanguageRepo) Create(ctx context.Context, l *models.CVLanguage) error {
	oid, err := insertOne(ctx, r.col, l)
	if err != nil {
		return err
	}
	l.ID = oid
	return nil
}

func (r *cvLanguageRepo) Update(ctx context.Context, id string, patch models.CVLanguagePatch) error {
	return updateByID(ctx, r.col, id, patch)
}

func (r *cvLanguageRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}
