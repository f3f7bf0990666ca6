package services

import (
	"context"
	"errors"

	"github.com/gepres/portafolio-2025-sub000/internal/cache"
	"github.com/gepres/portafolio-2025-sub000/internal/models"
	mongorepo "github.com/gepres/portafolio-2025-sub000/internal/repositories/mongo"
	"github.com/gepres/portafolio-2025-sub000/internal/utils"
)

// ProfileService serves the two singleton documents. Get distinguishes
// "not found" (CodeNotFound) so callers can render an empty state.
type ProfileService interface {
	GetProfile(ctx context.Context) (*models.ProfileInfo, error)
	UpsertProfile(ctx context.Context, patch models.ProfilePatch) (*models.ProfileInfo, error)
	GetContact(ctx context.Context) (*models.ContactInfo, error)
	UpsertContact(ctx context.Context, patch models.ContactPatch) (*models.ContactInfo, error)
}

type profileService struct {
	profile mongorepo.ProfileRepository
	contact mongorepo.ContactRepository
	cache   cache.Cache
}

func NewProfileService(profile mongorepo.ProfileRepository, contact mongorepo.ContactRepository, c cache.Cache) ProfileService {
	return &profileService{profile: profile, contact: contact, cache: c}
}

func (s *profileService) GetProfile(ctx context.Context) (*models.ProfileInfo, error) {
	const op = "ProfileService.GetProfile"

	p, err := s.profile.Get(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}
	return p, nil
}

func (s *profileService) UpsertProfile(ctx context.Context, patch models.ProfilePatch) (*models.ProfileInfo, error) {
	const op = "ProfileService.UpsertProfile"

	if err := s.profile.Upsert(ctx, patch); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to upsert profile", err)
	}
	s.invalidateCV(ctx)
	return s.GetProfile(ctx)
}

func (s *profileService) GetContact(ctx context.Context) (*models.ContactInfo, error) {
	const op = "ProfileService.GetContact"

	c, err := s.contact.Get(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "contact not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get contact", err)
	}
	return c, nil
}

func (s *profileService) UpsertContact(ctx context.Context, patch models.ContactPatch) (*models.ContactInfo, error) {
	const op = "ProfileService.UpsertContact"

	if err := s.contact.Upsert(ctx, patch); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to upsert contact", err)
	}
	s.invalidateCV(ctx)
	return s.GetContact(ctx)
}

func (s *profileService) invalidateCV(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Del(ctx, cache.CVKeys()...)
	}
}
