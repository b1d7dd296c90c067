package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLog is the best-effort admin audit trail. Writes never block or
// fail the operation they describe.
type ActivityLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AdminID     uuid.UUID `gorm:"type:uuid;not null;index" json:"admin_id"`
	ActionType  string    `gorm:"size:50;not null" json:"action_type"`
	TargetType  string    `gorm:"size:50" json:"target_type"`
	TargetID    string    `gorm:"size:255" json:"target_id"`
	Description string    `gorm:"size:1000" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (l *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (ActivityLog) TableName() string {
	return "admin_activity_logs"
}
