package services

import (
	"context"
	"io"

	"github.com/gepres/portafolio-2025-sub000/internal/models"
	mongorepo "github.com/gepres/portafolio-2025-sub000/internal/repositories/mongo"
	"github.com/gepres/portafolio-2025-sub000/internal/storage"
	"github.com/gepres/portafolio-2025-sub000/internal/utils"
)

// UploadService stores dashboard-uploaded assets and writes the resulting
// public URL back onto the owning record.
type UploadService interface {
	ProjectImage(ctx context.Context, projectID string, index int, contentType string, r io.Reader) (string, error)
	ExperienceLogo(ctx context.Context, experienceID, companyName, contentType string, r io.Reader) (string, error)
}

type uploadService struct {
	uploader    storage.Uploader
	projects    mongorepo.ProjectRepository
	experiences mongorepo.ExperienceRepository
}

func NewUploadService(uploader storage.Uploader, projects mongorepo.ProjectRepository, experiences mongorepo.ExperienceRepository) UploadService {
	return &uploadService{uploader: uploader, projects: projects, experiences: experiences}
}

func (s *uploadService) ProjectImage(ctx context.Context, projectID string, index int, contentType string, r io.Reader) (string, error) {
	const op = "UploadService.ProjectImage"

	if s.uploader == nil {
		return "", utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
	}
	if projectID == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "project id is required", nil)
	}

	url, err := s.uploader.Upload(ctx, storage.ProjectImageName(projectID, index), contentType, r)
	if err != nil {
		return "", utils.E(utils.CodeUnavailable, op, "failed to upload image", err)
	}

	if err := s.projects.Update(ctx, projectID, models.ProjectPatch{ImageURL: &url}); err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to store image url", err)
	}
	return url, nil
}

func (s *uploadService) ExperienceLogo(ctx context.Context, experienceID, companyName, contentType string, r io.Reader) (string, error) {
	const op = "UploadService.ExperienceLogo"

	if s.uploader == nil {
		return "", utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
	}
	if experienceID == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "experience id is required", nil)
	}

	url, err := s.uploader.Upload(ctx, storage.ExperienceLogoName(companyName), contentType, r)
	if err != nil {
		return "", utils.E(utils.CodeUnavailable, op, "failed to upload logo", err)
	}

	if err := s.experiences.Update(ctx, experienceID, models.ExperiencePatch{Logo: &url}); err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to store logo url", err)
	}
	return url, nil
}
