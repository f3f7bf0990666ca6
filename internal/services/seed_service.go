package services

import (
	"context"

	"github.com/gepres/portafolio-2025-sub000/internal/models"
	mongorepo "github.com/gepres/portafolio-2025-sub000/internal/repositories/mongo"
	"github.com/gepres/portafolio-2025-sub000/internal/utils"
)

// SeedService backs the one-time /seed-cv admin utility: it populates the
// education and language collections with starter records. A repeat call
// is a no-op as long as either collection has data.
type SeedService interface {
	SeedCV(ctx context.Context) (seeded bool, err error)
}

type seedService struct {
	education mongorepo.CVEducationRepository
	languages mongorepo.CVLanguageRepository
}

func NewSeedService(education mongorepo.CVEducationRepository, languages mongorepo.CVLanguageRepository) SeedService {
	return &seedService{education: education, languages: languages}
}

func (s *seedService) SeedCV(ctx context.Context) (bool, error) {
	const op = "SeedService.SeedCV"

	eduCount, err := s.education.Count(ctx)
	if err != nil {
		return false, utils.E(utils.CodeInternal, op, "failed to count education", err)
	}
	langCount, err := s.languages.Count(ctx)
	if err != nil {
		return false, utils.E(utils.CodeInternal, op, "failed to count languages", err)
	}
	if eduCount > 0 || langCount > 0 {
		return false, nil
	}

	for i := range defaultEducation {
		e := defaultEducation[i]
		if err := s.education.Create(ctx, &e); err != nil {
			return false, utils.E(utils.CodeInternal, op, "failed to seed education", err)
		}
	}
	for i := range defaultLanguages {
		l := defaultLanguages[i]
		if err := s.languages.Create(ctx, &l); err != nil {
			return false, utils.E(utils.CodeInternal, op, "failed to seed languages", err)
		}
	}
	return true, nil
}

var defaultEducation = []models.CVEducation{
	{
		Degree:      models.Bilingual{ES: "Ingeniería en Sistemas", EN: "Systems Engineering"},
		Institution: models.Bilingual{ES: "Universidad Tecnológica", EN: "Technological University"},
		StartDate:   "2016-08",
		EndDate:     "2021-06",
		Order:       0,
	},
	{
		Degree:      models.Bilingual{ES: "Certificación en Desarrollo Web", EN: "Web Development Certification"},
		Institution: models.FromString("Platzi"),
		StartDate:   "2021-01",
		EndDate:     "2021-12",
		Order:       1,
	},
}

var defaultLanguages = []models.CVLanguage{
	{
		Language: models.Bilingual{ES: "Español", EN: "Spanish"},
		Level:    models.Bilingual{ES: "Nativo", EN: "Native"},
		Order:    0,
	},
	{
		Language: models.Bilingual{ES: "Inglés", EN: "English"},
		Level:    models.Bilingual{ES: "Intermedio-avanzado", EN: "Upper intermediate"},
		Order:    1,
	},
}
