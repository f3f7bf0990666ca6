package services

import (
	"context"
	"errors"

	"github.com/gepres/portafolio-2025-sub000/internal/models"
	mongorepo "github.com/gepres/portafolio-2025-sub000/internal/repositories/mongo"
	"github.com/gepres/portafolio-2025-sub000/internal/utils"
)

type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	ListFeatured(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, p *models.Project) (*models.Project, error)
	Update(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	projects mongorepo.ProjectRepository
}

func NewProjectService(projects mongorepo.ProjectRepository) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) List(ctx context.Context) ([]models.Project, error) {
	const op = "ProjectService.List"

	out, err := s.projects.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list projects", err)
	}
	return out, nil
}

func (s *projectService) ListFeatured(ctx context.Context) ([]models.Project, error) {
	const op = "ProjectService.ListFeatured"

	out, err := s.projects.ListFeatured(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list featured projects", err)
	}
	return out, nil
}

func (s *projectService) Get(ctx context.Context, id string) (*models.Project, error) {
	const op = "ProjectService.Get"

	p, err := s.projects.Get(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "project not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get project", err)
	}
	return p, nil
}

func (s *projectService) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	const op = "ProjectService.Create"

	if p == nil || p.Title.IsZero() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "title is required", nil)
	}
	if !models.ValidProjectCategory(p.Category) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid category", nil)
	}

	if err := s.projects.Create(ctx, p); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create project", err)
	}
	return p, nil
}

func (s *projectService) Update(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error) {
	const op = "ProjectService.Update"

	if patch.Category != nil && !models.ValidProjectCategory(*patch.Category) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid category", nil)
	}

	if err := s.projects.Update(ctx, id, patch); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "project not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update project", err)
	}
	return s.Get(ctx, id)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	const op = "ProjectService.Delete"

	if err := s.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "project not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete project", err)
	}
	return nil
}
