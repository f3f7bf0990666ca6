package services

import (
	"context"
	"errors"

	"github.com/gepres/portafolio-2025-sub000/internal/cache"
	"github.com/gepres/portafolio-2025-sub000/internal/models"
	mongorepo "github.com/gepres/portafolio-2025-sub000/internal/repositories/mongo"
	"github.com/gepres/portafolio-2025-sub000/internal/utils"
)

type SkillService interface {
	List(ctx context.Context) ([]models.Skill, error)
	Grouped(ctx context.Context) ([]models.SkillGroup, error)
	Create(ctx context.Context, sk *models.Skill) (*models.Skill, error)
	Update(ctx context.Context, id string, patch models.SkillPatch) (*models.Skill, error)
	Delete(ctx context.Context, id string) error
}

type skillService struct {
	skills mongorepo.SkillRepository
	cache  cache.Cache
}

func NewSkillService(skills mongorepo.SkillRepository, c cache.Cache) SkillService {
	return &skillService{skills: skills, cache: c}
}

func (s *skillService) List(ctx context.Context) ([]models.Skill, error) {
	const op = "SkillService.List"

	out, err := s.skills.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list skills", err)
	}
	return out, nil
}

func (s *skillService) Grouped(ctx context.Context) ([]models.SkillGroup, error) {
	const op = "SkillService.Grouped"

	all, err := s.skills.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list skills", err)
	}
	return models.GroupSkills(all), nil
}

func (s *skillService) Create(ctx context.Context, sk *models.Skill) (*models.Skill, error) {
	const op = "SkillService.Create"

	if sk == nil || sk.Name == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name is required", nil)
	}
	if !models.ValidSkillCategory(sk.Category) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid category", nil)
	}
	if sk.Level < 0 || sk.Level > 100 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "level must be between 0 and 100", nil)
	}

	if err := s.skills.Create(ctx, sk); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create skill", err)
	}
	s.invalidateCV(ctx)
	return sk, nil
}

func (s *skillService) Update(ctx context.Context, id string, patch models.SkillPatch) (*models.Skill, error) {
	const op = "SkillService.Update"

	if patch.Category != nil && !models.ValidSkillCategory(*patch.Category) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid category", nil)
	}
	if patch.Level != nil && (*patch.Level < 0 || *patch.Level > 100) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "level must be between 0 and 100", nil)
	}

	if err := s.skills.Update(ctx, id, patch); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "skill not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update skill", err)
	}
	s.invalidateCV(ctx)

	sk, err := s.skills.Get(ctx, id)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to reload skill", err)
	}
	return sk, nil
}

func (s *skillService) Delete(ctx context.Context, id string) error {
	const op = "SkillService.Delete"

	if err := s.skills.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "skill not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete skill", err)
	}
	s.invalidateCV(ctx)
	return nil
}

func (s *skillService) invalidateCV(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Del(ctx, cache.CVKeys()...)
	}
}
