package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ProjectCategoryFrontend  = "frontend"
	ProjectCategoryBackend   = "backend"
	ProjectCategoryFullstack = "fullstack"
	ProjectCategoryMobile    = "mobile"
)

type Project struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           Bilingual          `bson:"title" json:"title"`
	Description     Bilingual          `bson:"description" json:"description"`
	LongDescription Bilingual          `bson:"long_description,omitempty" json:"longDescription,omitempty"`
	Category        string             `bson:"category" json:"category"`
	Technologies    []string           `bson:"technologies" json:"technologies"`
	ImageURL        string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	DemoURL         string             `bson:"demo_url,omitempty" json:"demoUrl,omitempty"`
	GithubURL       string             `bson:"github_url,omitempty" json:"githubUrl,omitempty"`
	// ClientID is a weak reference to the Experience the project was built
	// for. Lookup only, no lifecycle coupling.
	ClientID  string    `bson:"client_id,omitempty" json:"clientId,omitempty"`
	Featured  bool      `bson:"featured" json:"featured"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

func ValidProjectCategory(c string) bool {
	switch c {
	case ProjectCategoryFrontend, ProjectCategoryBackend, ProjectCategoryFullstack, ProjectCategoryMobile:
		return true
	}
	return false
}

// ProjectPatch is a partial update: nil fields are left untouched.
type ProjectPatch struct {
	Title           *Bilingual `bson:"title" json:"title"`
	Description     *Bilingual `bson:"description" json:"description"`
	LongDescription *Bilingual `bson:"long_description" json:"longDescription"`
	Category        *string    `bson:"category" json:"category"`
	Technologies    *[]string  `bson:"technologies" json:"technologies"`
	ImageURL        *string    `bson:"image_url" json:"imageUrl"`
	DemoURL         *string    `bson:"demo_url" json:"demoUrl"`
	GithubURL       *string    `bson:"github_url" json:"githubUrl"`
	ClientID        *string    `bson:"client_id" json:"clientId"`
	Featured        *bool      `bson:"featured" json:"featured"`
}
