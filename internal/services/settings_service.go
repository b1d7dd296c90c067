package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrSettingNotFound = errors.New("setting not found")

// SettingsService stores editable site copy as JSON values under unique keys.
type SettingsService struct {
	db       *gorm.DB
	activity *ActivityService
}

func NewSettingsService(db *gorm.DB, activity *ActivityService) *SettingsService {
	return &SettingsService{db: db, activity: activity}
}

func (s *SettingsService) GetAll() (map[string]json.RawMessage, error) {
	var settings []models.SiteSetting
	if err := s.db.Find(&settings).Error; err != nil {
		return nil, err
	}

	result := make(map[string]json.RawMessage, len(settings))
	for _, setting := range settings {
		result[setting.SettingKey] = json.RawMessage(setting.SettingValue)
	}
	return result, nil
}

func (s *SettingsService) Get(key string) (json.RawMessage, error) {
	var setting models.SiteSetting
	if err := s.db.Where("setting_key = ?", key).First(&setting).Error; err != nil {
		return nil, ErrSettingNotFound
	}
	return json.RawMessage(setting.SettingValue), nil
}

// Set upserts the value under key.
func (s *SettingsService) Set(adminID uuid.UUID, key string, value json.RawMessage) error {
	if key == "" {
		return errors.New("setting key is required")
	}
	if !json.Valid(value) {
		return fmt.Errorf("setting value for %q is not valid JSON", key)
	}

	var setting models.SiteSetting
	err := s.db.Where("setting_key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.SiteSetting{
			ID:           uuid.New(),
			SettingKey:   key,
			SettingValue: datatypes.JSON(value),
		}
		if err := s.db.Create(&setting).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	} else {
		if err := s.db.Model(&setting).Update("setting_value", datatypes.JSON(value)).Error; err != nil {
			return err
		}
	}

	s.activity.Log(adminID, "update_setting", "site_setting", key, "")
	return nil
}

func (s *SettingsService) Delete(adminID uuid.UUID, key string) error {
	result := s.db.Where("setting_key = ?", key).Delete(&models.SiteSetting{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}

	s.activity.Log(adminID, "delete_setting", "site_setting", key, "")
	return nil
}
