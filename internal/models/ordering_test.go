package models

import (
	"testing"
	"time"
)

func TestSortProjectsFeaturedFirst(t *testing.T) {
	t0 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 := t0.Add(24 * time.Hour)

	in := []Project{
		{Title: FromString("newer"), Featured: false, CreatedAt: t1},
		{Title: FromString("older featured"), Featured: true, CreatedAt: t0},
	}

	out := SortProjects(in)
	if !out[0].Featured {
		t.Fatalf("featured project should sort first, got %v", out[0].Title.ES)
	}
	// input untouched
	if in[0].Featured {
		t.Error("SortProjects mutated its input")
	}
}

func TestSortProjectsNewestFirstWithinPartition(t *testing.T) {
	t0 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	in := []Project{
		{Title: FromString("a"), CreatedAt: t0},
		{Title: FromString("b"), CreatedAt: t0.Add(time.Hour)},
		{Title: FromString("c"), CreatedAt: t0.Add(2 * time.Hour)},
	}

	out := SortProjects(in)
	want := []string{"c", "b", "a"}
	for i, w := range want {
		if out[i].Title.ES != w {
			t.Errorf("position %d: got %q, want %q", i, out[i].Title.ES, w)
		}
	}
}

func TestSortExperiencesOngoingFirst(t *testing.T) {
	in := []Experience{
		{Company: "old but current", StartDate: "Enero 2015", Current: true},
		{Company: "recent ended", StartDate: "Enero 2024", EndDate: "Junio 2024"},
		{Company: "present sentinel", StartDate: "Enero 2020", EndDate: "Presente"},
	}

	out := SortExperiences(in)
	if !out[0].Ongoing() || !out[1].Ongoing() {
		t.Fatal("ongoing experiences must precede ended ones")
	}
	if out[0].Company != "present sentinel" {
		t.Errorf("within ongoing, most recent start first; got %q", out[0].Company)
	}
	if out[2].Company != "recent ended" {
		t.Errorf("ended entry should be last, got %q", out[2].Company)
	}
}

func TestEffectiveEnd(t *testing.T) {
	e := Experience{EndDate: "Junio 2023", Current: true}
	if got := e.EffectiveEnd(); got != "Presente" {
		t.Errorf("current experience EffectiveEnd = %q, want Presente", got)
	}
	e.Current = false
	if got := e.EffectiveEnd(); got != "Junio 2023" {
		t.Errorf("EffectiveEnd = %q, want stored end date", got)
	}
}

func TestSortSkills(t *testing.T) {
	in := []Skill{
		{Name: "Postgres", Category: SkillCategoryBackend, Level: 50},
		{Name: "CSS", Category: SkillCategoryFrontend, Level: 10},
		{Name: "React", Category: SkillCategoryFrontend, Level: 90},
	}

	out := SortSkills(in)
	want := []string{"React", "CSS", "Postgres"}
	for i, w := range want {
		if out[i].Name != w {
			t.Errorf("position %d: got %q, want %q", i, out[i].Name, w)
		}
	}
}

func TestSortSkillsUnknownCategoryLast(t *testing.T) {
	in := []Skill{
		{Name: "Mystery", Category: "quantum", Level: 100},
		{Name: "Figma", Category: SkillCategoryDesign, Level: 10},
	}
	out := SortSkills(in)
	if out[len(out)-1].Name != "Mystery" {
		t.Error("unknown category should rank after all known categories")
	}
}

func TestGroupSkills(t *testing.T) {
	in := []Skill{
		{Name: "Postgres", Category: SkillCategoryDatabase, Level: 70},
		{Name: "React", Category: SkillCategoryFrontend, Level: 90},
		{Name: "Go", Category: SkillCategoryBackend, Level: 85},
		{Name: "Vue", Category: SkillCategoryFrontend, Level: 60},
	}

	groups := GroupSkills(in)
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	if groups[0].Category != SkillCategoryFrontend {
		t.Errorf("first group = %q, want frontend", groups[0].Category)
	}
	if len(groups[0].Skills) != 2 || groups[0].Skills[0].Name != "React" {
		t.Errorf("frontend group should hold React then Vue, got %+v", groups[0].Skills)
	}
}

func TestActiveSorted(t *testing.T) {
	in := []Service{
		{Title: FromString("third"), Order: 3, Active: true},
		{Title: FromString("hidden"), Order: 1, Active: false},
		{Title: FromString("first"), Order: 0, Active: true},
	}

	out := ActiveSorted(in)
	if len(out) != 2 {
		t.Fatalf("got %d services, want 2", len(out))
	}
	if out[0].Title.ES != "first" || out[1].Title.ES != "third" {
		t.Errorf("wrong order: %q, %q", out[0].Title.ES, out[1].Title.ES)
	}
}

func TestMapSkillCategoryToCV(t *testing.T) {
	tests := []struct{ in, want string }{
		{SkillCategoryFrontend, CVCategoryFrontend},
		{SkillCategoryBackend, CVCategoryBackend},
		{SkillCategoryDatabase, CVCategoryBackend},
		{SkillCategoryCloudDevOps, CVCategoryCloud},
		{SkillCategoryProjectMgmt, CVCategoryTools},
		{SkillCategoryDesign, CVCategoryDesign},
		{SkillCategoryOther, CVCategoryTools},
		{"weird", CVCategoryTools},
	}
	for _, tt := range tests {
		if got := MapSkillCategoryToCV(tt.in); got != tt.want {
			t.Errorf("MapSkillCategoryToCV(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
