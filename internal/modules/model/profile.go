package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the public author identity. UUID matches the owning User's
// UUID; content references profiles, never user accounts.
type Profile struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UUID        string    `gorm:"type:text;not null;uniqueIndex" json:"uuid"`
	DisplayName string    `gorm:"type:varchar(80);not null" json:"display_name"`

	AvatarURL *string `gorm:"type:text" json:"avatar_url"`
	Bio       *string `gorm:"type:varchar(500)" json:"bio"`

	WebsiteURL *string `gorm:"type:text" json:"website_url"`
	Location   *string `gorm:"type:varchar(120)" json:"location"`

	TwitterURL  *string `gorm:"type:text" json:"twitter_url"`
	GithubURL   *string `gorm:"type:text" json:"github_url"`
	LinkedinURL *string `gorm:"type:text" json:"linkedin_url"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }
