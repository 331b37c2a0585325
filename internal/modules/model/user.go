package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/masblog-io/masblog/internal/pkg/roles"
)

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserDisabled UserStatus = "disabled"
)

// User is the account record. UUID is the stable public identifier shared
// with the user's profile; tokens and ownership checks carry it instead of
// the database id.
type User struct {
	ID       uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email    string     `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Username string     `gorm:"type:text;not null;uniqueIndex" json:"username"`
	Password string     `gorm:"type:text;not null" json:"-"`
	Role     roles.Role `gorm:"type:text;not null;default:'reader';index" json:"role"`
	Status   UserStatus `gorm:"type:text;not null;default:'active';index" json:"status"`
	UUID     string     `gorm:"type:text;not null;uniqueIndex" json:"uuid"`

	EmailVerifiedAt *time.Time `gorm:"type:timestamptz" json:"email_verified_at"`
	LastLoginAt     *time.Time `gorm:"type:timestamptz" json:"last_login_at"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
