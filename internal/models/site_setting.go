package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SiteSetting stores editable marketing copy and feature switches as
// structured JSON values keyed by a unique setting key.
type SiteSetting struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SettingKey   string         `gorm:"size:100;uniqueIndex;not null" json:"setting_key"`
	SettingValue datatypes.JSON `json:"setting_value"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (s *SiteSetting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (SiteSetting) TableName() string {
	return "site_settings"
}
