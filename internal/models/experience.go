package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Experience struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Company string             `bson:"company" json:"company"`
	Logo    string             `bson:"logo,omitempty" json:"logo,omitempty"`
	Role    Bilingual          `bson:"role" json:"role"`
	// StartDate and EndDate are date tokens: "Abril 2021", "2021-04" or the
	// "Presente"/"Present" sentinel. See internal/dates.
	StartDate    string    `bson:"start_date" json:"startDate"`
	EndDate      string    `bson:"end_date" json:"endDate"`
	Description  Bilingual `bson:"description" json:"description"`
	Achievements []string  `bson:"achievements,omitempty" json:"achievements,omitempty"`
	Technologies []string  `bson:"technologies" json:"technologies"`
	Current      bool      `bson:"current" json:"current"`
	Order        int       `bson:"order,omitempty" json:"order,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

type ExperiencePatch struct {
	Company      *string    `bson:"company" json:"company"`
	Logo         *string    `bson:"logo" json:"logo"`
	Role         *Bilingual `bson:"role" json:"role"`
	StartDate    *string    `bson:"start_date" json:"startDate"`
	EndDate      *string    `bson:"end_date" json:"endDate"`
	Description  *Bilingual `bson:"description" json:"description"`
	Achievements *[]string  `bson:"achievements" json:"achievements"`
	Technologies *[]string  `bson:"technologies" json:"technologies"`
	Current      *bool      `bson:"current" json:"current"`
	Order        *int       `bson:"order" json:"order"`
}
