package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InviteCode grants its Role to the first identity that redeems it before
// ExpiresAt. A code moves is_used=false -> true exactly once; expiry is
// derived by comparing timestamps at read time, never stored as a state.
type InviteCode struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Code      string     `gorm:"size:64;uniqueIndex;not null" json:"code"`
	Role      string     `gorm:"size:20;not null;default:'user'" json:"role"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	IsUsed    bool       `gorm:"default:false" json:"is_used"`
	UsedBy    *uuid.UUID `gorm:"type:uuid" json:"used_by,omitempty"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedBy uuid.UUID  `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
}

func (ic *InviteCode) BeforeCreate(tx *gorm.DB) error {
	if ic.ID == uuid.Nil {
		ic.ID = uuid.New()
	}
	return nil
}

func (InviteCode) TableName() string {
	return "invite_codes"
}

// Expired reports whether the code's validity window has passed at now.
func (ic *InviteCode) Expired(now time.Time) bool {
	return !now.Before(ic.ExpiresAt)
}
