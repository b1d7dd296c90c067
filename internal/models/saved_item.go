package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SavedItem is set membership of (user, content_type, content_id). The unique
// index makes double-saving impossible at the storage layer.
type SavedItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_content" json:"user_id"`
	ContentType string    `gorm:"size:50;not null;uniqueIndex:idx_saved_user_content" json:"content_type"`
	ContentID   string    `gorm:"size:255;not null;uniqueIndex:idx_saved_user_content" json:"content_id"`
	SavedAt     time.Time `gorm:"autoCreateTime" json:"saved_at"`
}

func (s *SavedItem) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (SavedItem) TableName() string {
	return "user_saved_items"
}
