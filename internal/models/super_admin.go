package models

import (
	"time"

	"github.com/google/uuid"
)

// SuperAdmin is a presence-only allowlist row. Membership routes the identity
// to the admin surface regardless of Profile.Role. Rows are managed directly
// by operators; there is no self-service mutation path.
type SuperAdmin struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (SuperAdmin) TableName() string {
	return "super_admins"
}
