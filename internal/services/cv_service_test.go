package services

import (
	"context"
	"testing"

	"github.com/gepres/portafolio-2025-sub000/internal/models"
	"github.com/gepres/portafolio-2025-sub000/internal/utils"
)

type fakeProfileRepo struct {
	p     *models.ProfileInfo
	cvURL string
}

func (f *fakeProfileRepo) Get(ctx context.Context) (*models.ProfileInfo, error) {
	if f.p == nil {
		return nil, utils.ErrNotFound
	}
	return f.p, nil
}
func (f *fakeProfileRepo) Upsert(ctx context.Context, patch models.ProfilePatch) error { return nil }
func (f *fakeProfileRepo) SetCVURL(ctx context.Context, url string) error {
	f.cvURL = url
	return nil
}

type fakeContactRepo struct{ c *models.ContactInfo }

func (f *fakeContactRepo) Get(ctx context.Context) (*models.ContactInfo, error) {
	if f.c == nil {
		return nil, utils.ErrNotFound
	}
	return f.c, nil
}
func (f *fakeContactRepo) Upsert(ctx context.Context, patch models.ContactPatch) error { return nil }

type fakeEducationRepo struct{ items []models.CVEducation }

func (f *fakeEducationRepo) List(ctx context.Context) ([]models.CVEducation, error) {
	return f.items, nil
}
func (f *fakeEducationRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.items)), nil
}
func (f *fakeEducationRepo) Create(ctx context.Context, e *models.CVEducation) error {
	f.items = append(f.items, *e)
	return nil
}
func (f *fakeEducationRepo) Update(ctx context.Context, id string, patch models.CVEducationPatch) error {
	return nil
}
func (f *fakeEducationRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeLanguageRepo struct{ items []models.CVLanguage }

func (f *fakeLanguageRepo) List(ctx context.Context) ([]models.CVLanguage, error) {
	return f.items, nil
}
func (f *fakeLanguageRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.items)), nil
}
func (f *fakeLanguageRepo) Create(ctx context.Context, l *models.CVLanguage) error {
	f.items = append(f.items, *l)
	return nil
}
func (f *fakeLanguageRepo) Update(ctx context.Context, id string, patch models.CVLanguagePatch) error {
	return nil
}
func (f *fakeLanguageRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeCompetencyRepo struct{ items []models.Competency }

func (f *fakeCompetencyRepo) List(ctx context.Context) ([]models.Competency, error) {
	return models.ActiveSorted(f.items), nil
}
func (f *fakeCompetencyRepo) ListAll(ctx context.Context) ([]models.Competency, error) {
	return f.items, nil
}
func (f *fakeCompetencyRepo) Create(ctx context.Context, c *models.Competency) error { return nil }
func (f *fakeCompetencyRepo) Update(ctx context.Context, id string, patch models.CompetencyPatch) error {
	return nil
}
func (f *fakeCompetencyRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeSkillRepo struct{ items []models.Skill }

func (f *fakeSkillRepo) List(ctx context.Context) ([]models.Skill, error) {
	return models.SortSkills(f.items), nil
}
func (f *fakeSkillRepo) Get(ctx context.Context, id string) (*models.Skill, error) {
	return nil, utils.ErrNotFound
}
func (f *fakeSkillRepo) Create(ctx context.Context, s *models.Skill) error { return nil }
func (f *fakeSkillRepo) Update(ctx context.Context, id string, patch models.SkillPatch) error {
	return nil
}
func (f *fakeSkillRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeExperienceRepo struct{ items []models.Experience }

func (f *fakeExperienceRepo) List(ctx context.Context) ([]models.Experience, error) {
	return models.SortExperiences(f.items), nil
}
func (f *fakeExperienceRepo) Get(ctx context.Context, id string) (*models.Experience, error) {
	return nil, utils.ErrNotFound
}
func (f *fakeExperienceRepo) Create(ctx context.Context, e *models.Experience) error { return nil }
func (f *fakeExperienceRepo) Update(ctx context.Context, id string, patch models.ExperiencePatch) error {
	return nil
}
func (f *fakeExperienceRepo) Delete(ctx context.Context, id string) error { return nil }

func newTestCVService(profile *models.ProfileInfo, contact *models.ContactInfo, skills []models.Skill, experiences []models.Experience) CVService {
	return NewCVService(CVServiceDeps{
		Profile:      &fakeProfileRepo{p: profile},
		Contact:      &fakeContactRepo{c: contact},
		Education:    &fakeEducationRepo{},
		Languages:    &fakeLanguageRepo{},
		Competencies: &fakeCompetencyRepo{},
		Skills:       &fakeSkillRepo{items: skills},
		Experiences:  &fakeExperienceRepo{items: experiences},
	})
}

func TestBuildRequiresProfileOrContact(t *testing.T) {
	svc := newTestCVService(nil, nil, nil, nil)

	_, err := svc.Build(context.Background())
	if err == nil {
		t.Fatal("expected error when both profile and contact are absent")
	}
	if !utils.IsCode(err, utils.CodeNotFound) {
		t.Errorf("error code = %v, want NOT_FOUND", err)
	}
}

func TestBuildWithContactOnly(t *testing.T) {
	svc := newTestCVService(nil, &models.ContactInfo{Email: "me@example.com"}, nil, nil)

	cv, err := svc.Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if cv.PersonalInfo.Email != "me@example.com" {
		t.Errorf("email = %q", cv.PersonalInfo.Email)
	}
	if cv.PersonalInfo.FullName != fallbackFullName {
		t.Errorf("fullName = %q, want fallback %q", cv.PersonalInfo.FullName, fallbackFullName)
	}
}

func TestBuildSynthesizesSummary(t *testing.T) {
	profile := &models.ProfileInfo{
		FullName: "Ada Example",
		Bio: models.ProfileBio{
			Paragraph1: models.Bilingual{ES: "Primero.", EN: "First."},
			// second paragraph intentionally empty
			Paragraph3: models.Bilingual{ES: "Tercero.", EN: "Third."},
		},
	}
	svc := newTestCVService(profile, nil, nil, nil)

	cv, err := svc.Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := cv.PersonalInfo.Summary.ES; got != "Primero. Tercero." {
		t.Errorf("es summary = %q", got)
	}
	if got := cv.PersonalInfo.Summary.EN; got != "First. Third." {
		t.Errorf("en summary = %q", got)
	}
	if cv.PersonalInfo.FullName != "Ada Example" {
		t.Errorf("fullName = %q", cv.PersonalInfo.FullName)
	}
}

func TestBuildRemapsSkillCategories(t *testing.T) {
	skills := []models.Skill{
		{Name: "MongoDB", Category: models.SkillCategoryDatabase, Level: 80},
		{Name: "Figma", Category: models.SkillCategoryDesign, Level: 60},
	}
	svc := newTestCVService(&models.ProfileInfo{FullName: "A"}, nil, skills, nil)

	cv, err := svc.Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	byName := map[string]models.CVSkill{}
	for _, s := range cv.TechnicalSkills {
		byName[s.Name] = s
	}
	if byName["MongoDB"].Category != models.CVCategoryBackend {
		t.Errorf("database skill landed in %q, want backend", byName["MongoDB"].Category)
	}
	if byName["Figma"].Category != models.CVCategoryDesign {
		t.Errorf("design skill landed in %q", byName["Figma"].Category)
	}
}

func TestBuildRelabelsExperience(t *testing.T) {
	experiences := []models.Experience{
		{
			Company:   "Acme",
			Role:      models.Bilingual{ES: "Ingeniera", EN: "Engineer"},
			StartDate: "Enero 2020",
			EndDate:   "2023-06",
			Current:   true,
		},
	}
	svc := newTestCVService(&models.ProfileInfo{FullName: "A"}, nil, nil, experiences)

	cv, err := svc.Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(cv.Experience) != 1 {
		t.Fatalf("got %d experiences", len(cv.Experience))
	}
	e := cv.Experience[0]
	if e.Position.EN != "Engineer" {
		t.Errorf("position = %+v", e.Position)
	}
	// current flag overrides the stored end date
	if e.EndDate != "Presente" {
		t.Errorf("endDate = %q, want Presente", e.EndDate)
	}
}

func TestSynthesizeSummaryAllEmpty(t *testing.T) {
	got := synthesizeSummary(models.ProfileBio{})
	if got.ES != "" || got.EN != "" {
		t.Errorf("summary of empty bio = %+v", got)
	}
}
