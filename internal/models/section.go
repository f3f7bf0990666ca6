package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service, Interest and Competency are the small "section" records of the
// landing page. Only active ones render, ascending by Order.

type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       Bilingual          `bson:"title" json:"title"`
	Description Bilingual          `bson:"description" json:"description"`
	Icon        string             `bson:"icon,omitempty" json:"icon,omitempty"`
	Order       int                `bson:"order" json:"order"`
	Active      bool               `bson:"active" json:"active"`
}

func (s Service) SortOrder() int { return s.Order }
func (s Service) IsActive() bool { return s.Active }

type Interest struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   Bilingual          `bson:"name" json:"name"`
	Icon   string             `bson:"icon,omitempty" json:"icon,omitempty"`
	Order  int                `bson:"order" json:"order"`
	Active bool               `bson:"active" json:"active"`
}

func (i Interest) SortOrder() int { return i.Order }
func (i Interest) IsActive() bool { return i.Active }

type Competency struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   Bilingual          `bson:"name" json:"name"`
	Order  int                `bson:"order" json:"order"`
	Active bool               `bson:"active" json:"active"`
}

func (c Competency) SortOrder() int { return c.Order }
func (c Competency) IsActive() bool { return c.Active }

type ServicePatch struct {
	Title       *Bilingual `bson:"title" json:"title"`
	Description *Bilingual `bson:"description" json:"description"`
	Icon        *string    `bson:"icon" json:"icon"`
	Order       *int       `bson:"order" json:"order"`
	Active      *bool      `bson:"active" json:"active"`
}

type InterestPatch struct {
	Name   *Bilingual `bson:"name" json:"name"`
	Icon   *string    `bson:"icon" json:"icon"`
	Order  *int       `bson:"order" json:"order"`
	Active *bool      `bson:"active" json:"active"`
}

type CompetencyPatch struct {
	Name   *Bilingual `bson:"name" json:"name"`
	Order  *int       `bson:"order" json:"order"`
	Active *bool      `bson:"active" json:"active"`
}
