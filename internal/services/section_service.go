package services

import (
	"context"
	"errors"

	"github.com/gepres/portafolio-2025-sub000/internal/cache"
	"github.com/gepres/portafolio-2025-sub000/internal/models"
	mongorepo "github.com/gepres/portafolio-2025-sub000/internal/repositories/mongo"
	"github.com/gepres/portafolio-2025-sub000/internal/utils"
)

// SectionService covers the three small landing-page blocks: services,
// interests and competencies. Public listings only include active records.

type SectionService interface {
	ListServices(ctx context.Context, all bool) ([]models.Service, error)
	CreateService(ctx context.Context, v *models.Service) (*models.Service, error)
	UpdateService(ctx context.Context, id string, patch models.ServicePatch) error
	DeleteService(ctx context.Context, id string) error

	ListInterests(ctx context.Context, all bool) ([]models.Interest, error)
	CreateInterest(ctx context.Context, v *models.Interest) (*models.Interest, error)
	UpdateInterest(ctx context.Context, id string, patch models.InterestPatch) error
	DeleteInterest(ctx context.Context, id string) error

	ListCompetencies(ctx context.Context, all bool) ([]models.Competency, error)
	CreateCompetency(ctx context.Context, v *models.Competency) (*models.Competency, error)
	UpdateCompetency(ctx context.Context, id string, patch models.CompetencyPatch) error
	DeleteCompetency(ctx context.Context, id string) error
}

type sectionService struct {
	services     mongorepo.ServiceRepository
	interests    mongorepo.InterestRepository
	competencies mongorepo.CompetencyRepository
	cache        cache.Cache
}

func NewSectionService(
	services mongorepo.ServiceRepository,
	interests mongorepo.InterestRepository,
	competencies mongorepo.CompetencyRepository,
	c cache.Cache,
) SectionService {
	return &sectionService{services: services, interests: interests, competencies: competencies, cache: c}
}

func (s *sectionService) ListServices(ctx context.Context, all bool) ([]models.Service, error) {
	const op = "SectionService.ListServices"

	var (
		out []models.Service
		err error
	)
	if all {
		out, err = s.services.ListAll(ctx)
	} else {
		out, err = s.services.List(ctx)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list services", err)
	}
	return out, nil
}

func (s *sectionService) CreateService(ctx context.Context, v *models.Service) (*models.Service, error) {
	const op = "SectionService.CreateService"

	if v == nil || v.Title.IsZero() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "title is required", nil)
	}
	if err := s.services.Create(ctx, v); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create service", err)
	}
	return v, nil
}

func (s *sectionService) UpdateService(ctx context.Context, id string, patch models.ServicePatch) error {
	const op = "SectionService.UpdateService"
	return s.wrapMutation(op, "service", s.services.Update(ctx, id, patch))
}

func (s *sectionService) DeleteService(ctx context.Context, id string) error {
	const op = "SectionService.DeleteService"
	return s.wrapMutation(op, "service", s.services.Delete(ctx, id))
}

func (s *sectionService) ListInterests(ctx context.Context, all bool) ([]models.Interest, error) {
	const op = "SectionService.ListInterests"

	var (
		out []models.Interest
		err error
	)
	if all {
		out, err = s.interests.ListAll(ctx)
	} else {
		out, err = s.interests.List(ctx)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list interests", err)
	}
	return out, nil
}

func (s *sectionService) CreateInterest(ctx context.Context, v *models.Interest) (*models.Interest, error) {
	const op = "SectionService.CreateInterest"

	if v == nil || v.Name.IsZero() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name is required", nil)
	}
	if err := s.interests.Create(ctx, v); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create interest", err)
	}
	return v, nil
}

func (s *sectionService) UpdateInterest(ctx context.Context, id string, patch models.InterestPatch) error {
	const op = "SectionService.UpdateInterest"
	return s.wrapMutation(op, "interest", s.interests.Update(ctx, id, patch))
}

func (s *sectionService) DeleteInterest(ctx context.Context, id string) error {
	const op = "SectionService.DeleteInterest"
	return s.wrapMutation(op, "interest", s.interests.Delete(ctx, id))
}

func (s *sectionService) ListCompetencies(ctx context.Context, all bool) ([]models.Competency, error) {
	const op = "SectionService.ListCompetencies"

	var (
		out []models.Competency
		err error
	)
	if all {
		out, err = s.competencies.ListAll(ctx)
	} else {
		out, err = s.competencies.List(ctx)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list competencies", err)
	}
	return out, nil
}

func (s *sectionService) CreateCompetency(ctx context.Context, v *models.Competency) (*models.Competency, error) {
	const op = "SectionService.CreateCompetency"

	if v == nil || v.Name.IsZero() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name is required", nil)
	}
	if err := s.competencies.Create(ctx, v); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create competency", err)
	}
	s.invalidateCV(ctx)
	return v, nil
}

func (s *sectionService) UpdateCompetency(ctx context.Context, id string, patch models.CompetencyPatch) error {
	const op = "SectionService.UpdateCompetency"
	err := s.wrapMutation(op, "competency", s.competencies.Update(ctx, id, patch))
	if err == nil {
		s.invalidateCV(ctx)
	}
	return err
}

func (s *sectionService) DeleteCompetency(ctx context.Context, id string) error {
	const op = "SectionService.DeleteCompetency"
	err := s.wrapMutation(op, "competency", s.competencies.Delete(ctx, id))
	if err == nil {
		s.invalidateCV(ctx)
	}
	return err
}

func (s *sectionService) wrapMutation(op, entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, utils.ErrNotFound) {
		return utils.E(utils.CodeNotFound, op, entity+" not found", err)
	}
	return utils.E(utils.CodeInternal, op, "failed to modify "+entity, err)
}

func (s *sectionService) invalidateCV(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Del(ctx, cache.CVKeys()...)
	}
}
