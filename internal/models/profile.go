package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
)

// Profile is the per-identity account row. Exactly one profile exists per
// authenticated identity; it is created lazily on first session bootstrap
// when registration did not create it.
type Profile struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password     string         `gorm:"not null" json:"-"`
	FullName     string         `gorm:"size:255" json:"full_name"`
	Username     string         `gorm:"size:100;uniqueIndex" json:"username"`
	AvatarURL    string         `gorm:"size:500" json:"avatar_url"`
	Bio          string         `gorm:"size:1000" json:"bio"`
	Website      string         `gorm:"size:500" json:"website"`
	Role         string         `gorm:"size:20;default:'user'" json:"role"`
	Blocked      bool           `gorm:"default:false" json:"blocked"`
	AuthProvider string         `gorm:"size:50;default:'email'" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (Profile) TableName() string {
	return "profiles"
}

// ValidRole reports whether s is one of the role enum values.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleModerator || s == RoleUser
}
