package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CV categories are coarser than skill categories; see MapSkillCategoryToCV.
const (
	CVCategoryFrontend = "frontend"
	CVCategoryBackend  = "backend"
	CVCategoryCloud    = "cloud"
	CVCategoryTools    = "tools"
	CVCategoryDesign   = "design"
)

type CVEducation struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Degree      Bilingual          `bson:"degree" json:"degree"`
	Institution Bilingual          `bson:"institution" json:"institution"`
	StartDate   string             `bson:"start_date" json:"startDate"`
	EndDate     string             `bson:"end_date" json:"endDate"`
	Order       int                `bson:"order" json:"order"`
}

type CVEducationPatch struct {
	Degree      *Bilingual `bson:"degree" json:"degree"`
	Institution *Bilingual `bson:"institution" json:"institution"`
	StartDate   *string    `bson:"start_date" json:"startDate"`
	EndDate     *string    `bson:"end_date" json:"endDate"`
	Order       *int       `bson:"order" json:"order"`
}

type CVLanguage struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Language Bilingual          `bson:"language" json:"language"`
	Level    Bilingual          `bson:"level" json:"level"`
	Order    int                `bson:"order" json:"order"`
}

type CVLanguagePatch struct {
	Language *Bilingual `bson:"language" json:"language"`
	Level    *Bilingual `bson:"level" json:"level"`
	Order    *int       `bson:"order" json:"order"`
}

// CVData is the denormalized view model the CV page and the PDF exporter
// render from. It is assembled per request and never persisted.
type CVData struct {
	PersonalInfo    CVPersonalInfo `json:"personalInfo"`
	Education       []CVEducation  `json:"education"`
	Languages       []CVLanguage   `json:"languages"`
	SoftSkills      []CVSoftSkill  `json:"softSkills"`
	TechnicalSkills []CVSkill      `json:"technicalSkills"`
	Experience      []CVExperience `json:"experience"`
}

type CVPersonalInfo struct {
	FullName    string      `json:"fullName"`
	Title       Bilingual   `json:"title"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone,omitempty"`
	Location    Bilingual   `json:"location"`
	Summary     Bilingual   `json:"summary"`
	AvatarURL   string      `json:"avatarUrl,omitempty"`
	CVURL       string      `json:"cvUrl,omitempty"`
	SocialLinks SocialLinks `json:"socialLinks"`
}

type CVSoftSkill struct {
	Name  Bilingual `json:"name"`
	Order int       `json:"order"`
}

type CVSkill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"`
	Order    int    `json:"order"`
}

type CVExperience struct {
	Company      string    `json:"company"`
	Position     Bilingual `json:"position"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	Description  Bilingual `json:"description"`
	Achievements []string  `json:"achievements,omitempty"`
	Technologies []string  `json:"technologies"`
	Order        int       `json:"order"`
}
