package models

import (
	"sort"

	"github.com/gepres/portafolio-2025-sub000/internal/dates"
)

// Display rules applied after fetch, before render. All functions copy
// their input; fetched slices are never mutated.

var skillCategoryRank = map[string]int{
	SkillCategoryFrontend:    0,
	SkillCategoryBackend:     1,
	SkillCategoryDatabase:    2,
	SkillCategoryCloudDevOps: 3,
	SkillCategoryProjectMgmt: 4,
	SkillCategoryDesign:      5,
	SkillCategoryOther:       6,
}

const unknownCategoryRank = 99

// SkillCategoryDisplayOrder is the fixed iteration order for grouped
// rendering; empty groups are skipped.
var SkillCategoryDisplayOrder = []string{
	SkillCategoryFrontend, SkillCategoryBackend, SkillCategoryDatabase,
	SkillCategoryCloudDevOps, SkillCategoryProjectMgmt, SkillCategoryDesign,
	SkillCategoryOther,
}

var cvCategoryBySkillCategory = map[string]string{
	SkillCategoryFrontend:    CVCategoryFrontend,
	SkillCategoryBackend:     CVCategoryBackend,
	SkillCategoryDatabase:    CVCategoryBackend,
	SkillCategoryCloudDevOps: CVCategoryCloud,
	SkillCategoryProjectMgmt: CVCategoryTools,
	SkillCategoryDesign:      CVCategoryDesign,
	SkillCategoryOther:       CVCategoryTools,
}

// SortProjects orders featured projects first, then newest first within
// each partition.
func SortProjects(in []Project) []Project {
	out := make([]Project, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Featured != out[j].Featured {
			return out[i].Featured
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// EffectiveEnd is the end token with the current flag applied: a current
// position reads as ongoing regardless of what end date was stored.
func (e Experience) EffectiveEnd() string {
	if e.Current {
		return dates.PresentLabel
	}
	return e.EndDate
}

// Ongoing reports whether the experience has no effective end.
func (e Experience) Ongoing() bool {
	return e.Current || dates.IsPresent(e.EndDate)
}

// SortExperiences orders ongoing positions first, then by start date
// descending within each partition.
func SortExperiences(in []Experience) []Experience {
	out := make([]Experience, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Ongoing() != out[j].Ongoing() {
			return out[i].Ongoing()
		}
		return dates.ParseToSortKey(out[i].StartDate) > dates.ParseToSortKey(out[j].StartDate)
	})
	return out
}

func rankSkillCategory(c string) int {
	if r, ok := skillCategoryRank[c]; ok {
		return r
	}
	return unknownCategoryRank
}

// SortSkills orders by category rank, then level descending.
func SortSkills(in []Skill) []Skill {
	out := make([]Skill, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rankSkillCategory(out[i].Category), rankSkillCategory(out[j].Category)
		if ri != rj {
			return ri < rj
		}
		return out[i].Level > out[j].Level
	})
	return out
}

// SkillGroup is one category bucket of the grouped skills view.
type SkillGroup struct {
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}

// GroupSkills sorts and partitions by category, preserving the category
// order of first appearance in the sorted slice.
func GroupSkills(in []Skill) []SkillGroup {
	sorted := SortSkills(in)

	idx := map[string]int{}
	var groups []SkillGroup
	for _, s := range sorted {
		i, ok := idx[s.Category]
		if !ok {
			i = len(groups)
			idx[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}

// MapSkillCategoryToCV remaps a skill category into the coarser CV
// buckets. Unlisted categories land in tools.
func MapSkillCategoryToCV(category string) string {
	if c, ok := cvCategoryBySkillCategory[category]; ok {
		return c
	}
	return CVCategoryTools
}

type orderable interface {
	SortOrder() int
	IsActive() bool
}

// ActiveSorted keeps only active records, ascending by order.
func ActiveSorted[T orderable](in []T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if v.IsActive() {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortOrder() < out[j].SortOrder()
	})
	return out
}

// SortByOrder orders CV education records ascending by their order field.
func SortByOrder(in []CVEducation) []CVEducation {
	out := make([]CVEducation, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// SortLanguagesByOrder orders CV language records ascending by order.
func SortLanguagesByOrder(in []CVLanguage) []CVLanguage {
	out := make([]CVLanguage, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
