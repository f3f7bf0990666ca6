package render

import (
	"strings"
	"testing"

	"github.com/gepres/portafolio-2025-sub000/internal/models"
)

func testCV() *models.CVData {
	return &models.CVData{
		PersonalInfo: models.CVPersonalInfo{
			FullName: "Ada Example",
			Title:    models.Bilingual{ES: "Desarrolladora", EN: "Developer"},
			Email:    "ada@example.com",
			Location: models.Bilingual{ES: "Madrid, España", EN: "Madrid, Spain"},
			Summary:  models.Bilingual{ES: "Resumen.", EN: "Summary."},
		},
		Experience: []models.CVExperience{
			{
				Company:      "Acme",
				Position:     models.Bilingual{ES: "Ingeniera", EN: "Engineer"},
				StartDate:    "2020-01",
				EndDate:      "Presente",
				Technologies: []string{"Go", "React"},
			},
		},
		TechnicalSkills: []models.CVSkill{{Name: "Go", Category: models.CVCategoryBackend, Level: 90}},
	}
}

func TestRenderHTMLResolvesLanguage(t *testing.T) {
	cv := testCV()

	es, err := RenderHTML(cv, models.LangES)
	if err != nil {
		t.Fatalf("RenderHTML(es): %v", err)
	}
	for _, want := range []string{"Ada Example", "Desarrolladora", "Ingeniera", "Presente", "Go"} {
		if !strings.Contains(es, want) {
			t.Errorf("spanish render missing %q", want)
		}
	}

	en, err := RenderHTML(cv, models.LangEN)
	if err != nil {
		t.Fatalf("RenderHTML(en): %v", err)
	}
	if !strings.Contains(en, "Developer") || !strings.Contains(en, "Engineer") {
		t.Error("english render did not resolve bilingual fields to English")
	}
}

func TestRenderHTMLNumericDatesFormatted(t *testing.T) {
	cv := testCV()
	out, err := RenderHTML(cv, models.LangES)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if !strings.Contains(out, "Ene 2020") {
		t.Error("numeric start date was not formatted for display")
	}
}
