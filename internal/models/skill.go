package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	SkillCategoryFrontend    = "frontend"
	SkillCategoryBackend     = "backend"
	SkillCategoryDatabase    = "database"
	SkillCategoryCloudDevOps = "cloud_devops"
	SkillCategoryProjectMgmt = "project_management"
	SkillCategoryDesign      = "design"
	SkillCategoryOther       = "other"
)

type Skill struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Category string             `bson:"category" json:"category"`
	// Level is a 0-100 proficiency value rendered as a progress bar.
	Level             int    `bson:"level" json:"level"`
	Icon              string `bson:"icon" json:"icon"`
	YearsOfExperience int    `bson:"years_of_experience,omitempty" json:"yearsOfExperience,omitempty"`
	ProjectsCount     int    `bson:"projects_count,omitempty" json:"projectsCount,omitempty"`
	Order             int    `bson:"order" json:"order"`
}

func ValidSkillCategory(c string) bool {
	switch c {
	case SkillCategoryFrontend, SkillCategoryBackend, SkillCategoryDatabase,
		SkillCategoryCloudDevOps, SkillCategoryProjectMgmt, SkillCategoryDesign, SkillCategoryOther:
		return true
	}
	return false
}

type SkillPatch struct {
	Name              *string `bson:"name" json:"name"`
	Category          *string `bson:"category" json:"category"`
	Level             *int    `bson:"level" json:"level"`
	Icon              *string `bson:"icon" json:"icon"`
	YearsOfExperience *int    `bson:"years_of_experience" json:"yearsOfExperience"`
	ProjectsCount     *int    `bson:"projects_count" json:"projectsCount"`
	Order             *int    `bson:"order" json:"order"`
}
