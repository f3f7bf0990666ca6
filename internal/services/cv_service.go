package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/gepres/portafolio-2025-sub000/internal/cache"
	"github.com/gepres/portafolio-2025-sub000/internal/models"
	"github.com/gepres/portafolio-2025-sub000/internal/render"
	mongorepo "github.com/gepres/portafolio-2025-sub000/internal/repositories/mongo"
	"github.com/gepres/portafolio-2025-sub000/internal/storage"
	"github.com/gepres/portafolio-2025-sub000/internal/utils"
)

// fallbackFullName fills personalInfo.fullName when the profile document
// is missing or has no name.
const fallbackFullName = "Gepres"

const cvCacheTTL = 5 * time.Minute

// CVService assembles the denormalized CV view and drives the PDF export.
type CVService interface {
	Build(ctx context.Context) (*models.CVData, error)
	ExportPDF(ctx context.Context, lang models.Lang) ([]byte, error)
	Publish(ctx context.Context, lang models.Lang) (string, error)

	ListEducation(ctx context.Context) ([]models.CVEducation, error)
	CreateEducation(ctx context.Context, e *models.CVEducation) (*models.CVEducation, error)
	UpdateEducation(ctx context.Context, id string, patch models.CVEducationPatch) error
	DeleteEducation(ctx context.Context, id string) error

	ListLanguages(ctx context.Context) ([]models.CVLanguage, error)
	CreateLanguage(ctx context.Context, l *models.CVLanguage) (*models.CVLanguage, error)
	UpdateLanguage(ctx context.Context, id string, patch models.CVLanguagePatch) error
	DeleteLanguage(ctx context.Context, id string) error
}

type cvService struct {
	profile      mongorepo.ProfileRepository
	contact      mongorepo.ContactRepository
	education    mongorepo.CVEducationRepository
	languages    mongorepo.CVLanguageRepository
	competencies mongorepo.CompetencyRepository
	skills       mongorepo.SkillRepository
	experiences  mongorepo.ExperienceRepository

	cache    cache.Cache
	renderer render.Renderer
	uploader storage.Uploader
	log      *logrus.Logger
}

type CVServiceDeps struct {
	Profile      mongorepo.ProfileRepository
	Contact      mongorepo.ContactRepository
	Education    mongorepo.CVEducationRepository
	Languages    mongorepo.CVLanguageRepository
	Competencies mongorepo.CompetencyRepository
	Skills       mongorepo.SkillRepository
	Experiences  mongorepo.ExperienceRepository
	Cache        cache.Cache
	Renderer     render.Renderer
	Uploader     storage.Uploader
	Log          *logrus.Logger
}

func NewCVService(d CVServiceDeps) CVService {
	return &cvService{
		profile:      d.Profile,
		contact:      d.Contact,
		education:    d.Education,
		languages:    d.Languages,
		competencies: d.Competencies,
		skills:       d.Skills,
		experiences:  d.Experiences,
		cache:        d.Cache,
		renderer:     d.Renderer,
		uploader:     d.Uploader,
		log:          d.Log,
	}
}

// Build fetches every CV source in parallel and merges them. Individual
// fetch failures degrade to empty sections; only the combination of a
// missing profile AND a missing contact makes the CV unrenderable.
func (s *cvService) Build(ctx context.Context) (*models.CVData, error) {
	const op = "CVService.Build"

	if s.cache != nil {
		var cached models.CVData
		if hit, _ := s.cache.GetJSON(ctx, cache.CVDataKey, &cached); hit {
			return &cached, nil
		}
	}

	var (
		profile      *models.ProfileInfo
		contact      *models.ContactInfo
		education    []models.CVEducation
		languages    []models.CVLanguage
		competencies []models.Competency
		skills       []models.Skill
		experiences  []models.Experience
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		if profile, err = s.profile.Get(ctx); err != nil && !errors.Is(err, utils.ErrNotFound) {
			s.logFetch("profile", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if contact, err = s.contact.Get(ctx); err != nil && !errors.Is(err, utils.ErrNotFound) {
			s.logFetch("contact", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if education, err = s.education.List(ctx); err != nil {
			s.logFetch("cv_education", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if languages, err = s.languages.List(ctx); err != nil {
			s.logFetch("cv_languages", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if competencies, err = s.competencies.List(ctx); err != nil {
			s.logFetch("competencies", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if skills, err = s.skills.List(ctx); err != nil {
			s.logFetch("skills", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if experiences, err = s.experiences.List(ctx); err != nil {
			s.logFetch("experiences", err)
		}
		return nil
	})
	_ = g.Wait()

	if profile == nil && contact == nil {
		return nil, utils.E(utils.CodeNotFound, op, "insufficient data to build CV", nil)
	}

	cv := &models.CVData{
		PersonalInfo:    buildPersonalInfo(profile, contact),
		Education:       education,
		Languages:       languages,
		SoftSkills:      buildSoftSkills(competencies),
		TechnicalSkills: buildTechnicalSkills(skills),
		Experience:      buildCVExperience(experiences),
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, cache.CVDataKey, cv, cvCacheTTL)
	}
	return cv, nil
}

func (s *cvService) logFetch(source string, err error) {
	if s.log != nil {
		s.log.WithError(err).WithField("source", source).Error("cv fetch failed")
	}
}

func buildPersonalInfo(profile *models.ProfileInfo, contact *models.ContactInfo) models.CVPersonalInfo {
	pi := models.CVPersonalInfo{FullName: fallbackFullName}

	if profile != nil {
		if profile.FullName != "" {
			pi.FullName = profile.FullName
		}
		pi.Title = profile.Title
		pi.Summary = synthesizeSummary(profile.Bio)
		pi.AvatarURL = profile.AvatarAbout
		pi.CVURL = profile.CVURL
		pi.SocialLinks = profile.SocialLinks
	}
	if contact != nil {
		pi.Email = contact.Email
		pi.Phone = contact.Phone
		pi.Location = contact.Location
	}
	return pi
}

// synthesizeSummary joins the bio paragraphs with single spaces, skipping
// empty ones, independently per language.
func synthesizeSummary(bio models.ProfileBio) models.Bilingual {
	paragraphs := []models.Bilingual{bio.Paragraph1, bio.Paragraph2, bio.Paragraph3}

	join := func(lang models.Lang) string {
		var parts []string
		for _, p := range paragraphs {
			if v := p.Resolve(lang); v != "" {
				parts = append(parts, v)
			}
		}
		return strings.Join(parts, " ")
	}

	return models.Bilingual{ES: join(models.LangES), EN: join(models.LangEN)}
}

func buildSoftSkills(competencies []models.Competency) []models.CVSoftSkill {
	out := make([]models.CVSoftSkill, 0, len(competencies))
	for i, c := range competencies {
		order := c.Order
		if order == 0 {
			order = i
		}
		out = append(out, models.CVSoftSkill{Name: c.Name, Order: order})
	}
	return out
}

func buildTechnicalSkills(skills []models.Skill) []models.CVSkill {
	out := make([]models.CVSkill, 0, len(skills))
	for i, sk := range skills {
		order := sk.Order
		if order == 0 {
			order = i
		}
		out = append(out, models.CVSkill{
			Name:     sk.Name,
			Category: models.MapSkillCategoryToCV(sk.Category),
			Level:    sk.Level,
			Order:    order,
		})
	}
	return out
}

func buildCVExperience(experiences []models.Experience) []models.CVExperience {
	out := make([]models.CVExperience, 0, len(experiences))
	for i, e := range experiences {
		order := e.Order
		if order == 0 {
			order = i
		}
		out = append(out, models.CVExperience{
			Company:      e.Company,
			Position:     e.Role,
			StartDate:    e.StartDate,
			EndDate:      e.EffectiveEnd(),
			Description:  e.Description,
			Achievements: e.Achievements,
			Technologies: e.Technologies,
			Order:        order,
		})
	}
	return out
}

func (s *cvService) ExportPDF(ctx context.Context, lang models.Lang) ([]byte, error) {
	const op = "CVService.ExportPDF"

	cv, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}
	if s.renderer == nil {
		return nil, utils.E(utils.CodeInternal, op, "renderer is not configured", nil)
	}

	pdf, err := s.renderer.RenderCV(ctx, cv, lang)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to render CV", err)
	}
	return pdf, nil
}

// Publish renders the CV, stores it at the public resume path and writes
// the resulting URL back into the profile document.
func (s *cvService) Publish(ctx context.Context, lang models.Lang) (string, error) {
	const op = "CVService.Publish"

	pdf, err := s.ExportPDF(ctx, lang)
	if err != nil {
		return "", err
	}
	if s.uploader == nil {
		return "", utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
	}

	url, err := s.uploader.Upload(ctx, storage.CVResumeName(), "application/pdf", bytes.NewReader(pdf))
	if err != nil {
		return "", utils.E(utils.CodeUnavailable, op, "failed to upload CV", err)
	}

	if err := s.profile.SetCVURL(ctx, url); err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to store CV url", err)
	}
	s.invalidate(ctx)
	return url, nil
}

func (s *cvService) ListEducation(ctx context.Context) ([]models.CVEducation, error) {
	const op = "CVService.ListEducation"

	out, err := s.education.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list education", err)
	}
	return out, nil
}

func (s *cvService) CreateEducation(ctx context.Context, e *models.CVEducation) (*models.CVEducation, error) {
	const op = "CVService.CreateEducation"

	if e == nil || e.Degree.IsZero() || e.Institution.IsZero() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "degree and institution are required", nil)
	}
	if err := s.education.Create(ctx, e); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create education", err)
	}
	s.invalidate(ctx)
	return e, nil
}

func (s *cvService) UpdateEducation(ctx context.Context, id string, patch models.CVEducationPatch) error {
	const op = "CVService.UpdateEducation"

	if err := s.education.Update(ctx, id, patch); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "education not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to update education", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *cvService) DeleteEducation(ctx context.Context, id string) error {
	const op = "CVService.DeleteEducation"

	if err := s.education.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "education not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete education", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *cvService) ListLanguages(ctx context.Context) ([]models.CVLanguage, error) {
	const op = "CVService.ListLanguages"

	out, err := s.languages.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list languages", err)
	}
	return out, nil
}

func (s *cvService) CreateLanguage(ctx context.Context, l *models.CVLanguage) (*models.CVLanguage, error) {
	const op = "CVService.CreateLanguage"

	if l == nil || l.Language.IsZero() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "language is required", nil)
	}
	if err := s.languages.Create(ctx, l); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create language", err)
	}
	s.invalidate(ctx)
	return l, nil
}

func (s *cvService) UpdateLanguage(ctx context.Context, id string, patch models.CVLanguagePatch) error {
	const op = "CVService.UpdateLanguage"

	if err := s.languages.Update(ctx, id, patch); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "language not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to update language", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *cvService) DeleteLanguage(ctx context.Context, id string) error {
	const op = "CVService.DeleteLanguage"

	if err := s.languages.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "language not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete language", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *cvService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Del(ctx, cache.CVKeys()...)
	}
}
