package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gepres/portafolio-2025-sub000/internal/models"
)

// Section repositories back the services/interests/competencies blocks of
// the landing page. List returns only active records, ascending by order;
// ListAll returns everything for the admin dashboard.

type ServiceRepository interface {
	List(ctx context.Context) ([]models.Service, error)
	ListAll(ctx context.Context) ([]models.Service, error)
	Create(ctx context.Context, s *models.Service) error
	Update(ctx context.Context, id string, patch models.ServicePatch) error
	Delete(ctx context.Context, id string) error
}

type serviceRepo struct {
	col *mongo.Collection
}

func NewServiceRepo(db *mongo.Database) ServiceRepository {
	return &serviceRepo{col: db.Collection("services")}
}

func (r *serviceRepo) List(ctx context.Context) ([]models.Service, error) {
	all, err := findAll[models.Service](ctx, r.col)
	if err != nil {
		return nil, err
	}
	return models.ActiveSorted(all), nil
}

func (r *serviceRepo) ListAll(ctx context.Context) ([]models.Service, error) {
	return findAll[models.Service](ctx, r.col)
}

func (r *serviceRepo) Create(ctx context.Context, s *models.Service) error {
	oid, err := insertOne(ctx, r.col, s)
	if err != nil {
		return err
	}
	s.ID = oid
	return nil
}

func (r *serviceRepo) Update(ctx context.Context, id string, patch models.ServicePatch) error {
	return updateByID(ctx, r.col, id, patch)
}

func (r *serviceRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

type InterestRepository interface {
	List(ctx context.Context) ([]models.Interest, error)
	ListAll(ctx context.Context) ([]models.Interest, error)
	Create(ctx context.Context, i *models.Interest) error
	Update(ctx context.Context, id string, patch models.InterestPatch) error
	Delete(ctx context.Context, id string) error
}

type interestRepo struct {
	col *mongo.Collection
}

func NewInterestRepo(db *mongo.Database) InterestRepository {
	return &interestRepo{col: db.Collection("interests")}
}

func (r *interestRepo) List(ctx context.Context) ([]models.Interest, error) {
	all, err := findAll[models.Interest](ctx, r.col)
	if err != nil {
		return nil, err
	}
	return models.ActiveSorted(all), nil
}

func (r *interestRepo) ListAll(ctx context.Context) ([]models.Interest, error) {
	return findAll[models.Interest](ctx, r.col)
}

func (r *interestRepo) Create(ctx context.Context, i *models.Interest) error {
	oid, err := insertOne(ctx, r.col, i)
	if err != nil {
		return err
	}
	i.ID = oid
	return nil
}

func (r *interestRepo) Update(ctx context.Context, id string, patch models.InterestPatch) error {
	return updateByID(ctx, r.col, id, patch)
}

func (r *interestRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

type CompetencyRepository interface {
	List(ctx context.Context) ([]models.Competency, error)
	ListAll(ctx context.Context) ([]models.Competency, error)
	Create(ctx context.Context, c *models.Competency) error
	Update(ctx context.Context, id string, patch models.CompetencyPatch) error
	Delete(ctx context.Context, id string) error
}

type competencyRepo struct {
	col *mongo.Collection
}

func NewCompetencyRepo(db *mongo.Database) CompetencyRepository {
	return &competencyRepo{col: db.Collection("competencies")}
}

func (r *competencyRepo) List(ctx context.Context) ([]models.Competency, error) {
	all, err := findAll[models.Competency](ctx, r.col)
	if err != nil {
		return nil, err
	}
	return models.ActiveSorted(all), nil
}

func (r *competencyRepo) ListAll(ctx context.Context) ([]models.Competency, error) {
	return findAll[models.Competency](ctx, r.col)
}

func (r *competencyRepo) Create(ctx context.Context, c *models.Competency) error {
	oid, err := insertOne(ctx, r.col, c)
	if err != nil {
		return err
	}
	c.ID = oid
	return nil
}

func (r *competencyRepo) Update(ctx context.Context, id string, patch models.CompetencyPatch) error {
	return updateByID(ctx, r.col, id, patch)
}

func (r *competencyRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}
