package services

import (
	"context"
	"errors"

	"github.com/gepres/portafolio-2025-sub000/internal/cache"
	"github.com/gepres/portafolio-2025-sub000/internal/models"
	mongorepo "github.com/gepres/portafolio-2025-sub000/internal/repositories/mongo"
	"github.com/gepres/portafolio-2025-sub000/internal/utils"
)

type ExperienceService interface {
	List(ctx context.Context) ([]models.Experience, error)
	Get(ctx context.Context, id string) (*models.Experience, error)
	Create(ctx context.Context, e *models.Experience) (*models.Experience, error)
	Update(ctx context.Context, id string, patch models.ExperiencePatch) (*models.Experience, error)
	Delete(ctx context.Context, id string) error
}

type experienceService struct {
	experiences mongorepo.ExperienceRepository
	cache       cache.Cache
}

func NewExperienceService(experiences mongorepo.ExperienceRepository, c cache.Cache) ExperienceService {
	return &experienceService{experiences: experiences, cache: c}
}

func (s *experienceService) List(ctx context.Context) ([]models.Experience, error) {
	const op = "ExperienceService.List"

	out, err := s.experiences.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list experiences", err)
	}
	return out, nil
}

func (s *experienceService) Get(ctx context.Context, id string) (*models.Experience, error) {
	const op = "ExperienceService.Get"

	e, err := s.experiences.Get(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "experience not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get experience", err)
	}
	return e, nil
}

func (s *experienceService) Create(ctx context.Context, e *models.Experience) (*models.Experience, error) {
	const op = "ExperienceService.Create"

	if e == nil || e.Company == "" || e.Role.IsZero() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "company and role are required", nil)
	}
	if e.StartDate == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "start_date is required", nil)
	}

	if err := s.experiences.Create(ctx, e); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create experience", err)
	}
	s.invalidateCV(ctx)
	return e, nil
}

func (s *experienceService) Update(ctx context.Context, id string, patch models.ExperiencePatch) (*models.Experience, error) {
	const op = "ExperienceService.Update"

	if err := s.experiences.Update(ctx, id, patch); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "experience not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update experience", err)
	}
	s.invalidateCV(ctx)
	return s.Get(ctx, id)
}

func (s *experienceService) Delete(ctx context.Context, id string) error {
	const op = "ExperienceService.Delete"

	if err := s.experiences.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "experience not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete experience", err)
	}
	s.invalidateCV(ctx)
	return nil
}

func (s *experienceService) invalidateCV(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Del(ctx, cache.CVKeys()...)
	}
}
