package models

import "time"

// ContactInfo is the singleton document behind the contact section.
type ContactInfo struct {
	ID        string    `bson:"_id" json:"-"`
	Email     string    `bson:"email" json:"email"`
	Location  Bilingual `bson:"location" json:"location"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Whatsapp  string    `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

type ContactPatch struct {
	Email    *string    `bson:"email" json:"email"`
	Location *Bilingual `bson:"location" json:"location"`
	Phone    *string    `bson:"phone" json:"phone"`
	Whatsapp *string    `bson:"whatsapp" json:"whatsapp"`
}
