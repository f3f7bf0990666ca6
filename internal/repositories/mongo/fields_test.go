package mongo

import (
	"testing"

	"github.com/gepres/portafolio-2025-sub000/internal/models"
)

func TestSetDocSkipsUnsetFields(t *testing.T) {
	name := "Go"
	level := 0
	patch := models.SkillPatch{
		Name:  &name,
		Level: &level,
		// Category, Icon, YearsOfExperience, ProjectsCount, Order unset
	}

	doc := setDoc(patch)
	if len(doc) != 2 {
		t.Fatalf("got %d keys, want 2: %v", len(doc), doc)
	}
	if doc["name"] != "Go" {
		t.Errorf("name = %v", doc["name"])
	}
	// a provided zero value is still a provided value
	if doc["level"] != 0 {
		t.Errorf("level = %v, want 0", doc["level"])
	}
	for _, absent := range []string{"category", "icon", "years_of_experience", "projects_count", "order"} {
		if _, ok := doc[absent]; ok {
			t.Errorf("unset field %q leaked into payload", absent)
		}
	}
}

func TestSetDocEmptyPatch(t *testing.T) {
	doc := setDoc(models.ProjectPatch{})
	if len(doc) != 0 {
		t.Errorf("empty patch produced keys: %v", doc)
	}
}

func TestSetDocFalseIsKept(t *testing.T) {
	featured := false
	doc := setDoc(models.ProjectPatch{Featured: &featured})
	v, ok := doc["featured"]
	if !ok {
		t.Fatal("explicit false was stripped")
	}
	if v != false {
		t.Errorf("featured = %v, want false", v)
	}
}

func TestSetDocPointerToPatch(t *testing.T) {
	company := "Acme"
	doc := setDoc(&models.ExperiencePatch{Company: &company})
	if doc["company"] != "Acme" {
		t.Errorf("company = %v", doc["company"])
	}
}
