package models

import "time"

// SingletonKey is the fixed document id used by singleton collections
// (profile, contact). There is exactly one of each.
const SingletonKey = "main"

type SocialLinks struct {
	Github   string `bson:"github,omitempty" json:"github,omitempty"`
	Linkedin string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Twitter  string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Email    string `bson:"email,omitempty" json:"email,omitempty"`
	Whatsapp string `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
}

type ProfileStats struct {
	YearsOfExperience int `bson:"years_of_experience" json:"yearsOfExperience"`
	ProjectsCompleted int `bson:"projects_completed" json:"projectsCompleted"`
}

type ProfileBio struct {
	Paragraph1 Bilingual `bson:"paragraph1" json:"paragraph1"`
	Paragraph2 Bilingual `bson:"paragraph2" json:"paragraph2"`
	Paragraph3 Bilingual `bson:"paragraph3" json:"paragraph3"`
}

// ProfileInfo is the singleton document behind the hero/about sections.
type ProfileInfo struct {
	ID            string       `bson:"_id" json:"-"`
	FullName      string       `bson:"full_name" json:"fullName"`
	AvatarHero    string       `bson:"avatar_hero,omitempty" json:"avatarHero,omitempty"`
	AvatarAbout   string       `bson:"avatar_about,omitempty" json:"avatarAbout,omitempty"`
	AvatarInitial string       `bson:"avatar_initial,omitempty" json:"avatarInitial,omitempty"`
	Title         Bilingual    `bson:"title" json:"title"`
	Subtitle      Bilingual    `bson:"subtitle" json:"subtitle"`
	Description   Bilingual    `bson:"description" json:"description"`
	Bio           ProfileBio   `bson:"bio" json:"bio"`
	Stats         ProfileStats `bson:"stats" json:"stats"`
	SocialLinks   SocialLinks  `bson:"social_links" json:"socialLinks"`
	CVURL         string       `bson:"cv_url,omitempty" json:"cvUrl,omitempty"`
	UpdatedAt     time.Time    `bson:"updated_at" json:"updatedAt"`
}

type ProfilePatch struct {
	FullName      *string       `bson:"full_name" json:"fullName"`
	AvatarHero    *string       `bson:"avatar_hero" json:"avatarHero"`
	AvatarAbout   *string       `bson:"avatar_about" json:"avatarAbout"`
	AvatarInitial *string       `bson:"avatar_initial" json:"avatarInitial"`
	Title         *Bilingual    `bson:"title" json:"title"`
	Subtitle      *Bilingual    `bson:"subtitle" json:"subtitle"`
	Description   *Bilingual    `bson:"description" json:"description"`
	Bio           *ProfileBio   `bson:"bio" json:"bio"`
	Stats         *ProfileStats `bson:"stats" json:"stats"`
	SocialLinks   *SocialLinks  `bson:"social_links" json:"socialLinks"`
	CVURL         *string       `bson:"cv_url" json:"cvUrl"`
}
