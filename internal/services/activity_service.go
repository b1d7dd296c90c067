package services

import (
	"log/slog"

	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityService writes the admin audit trail. Logging is best-effort:
// failures are warned about and swallowed, never propagated.
type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

func (s *ActivityService) Log(adminID uuid.UUID, actionType, targetType, targetID, description string) {
	entry := models.ActivityLog{
		ID:          uuid.New(),
		AdminID:     adminID,
		ActionType:  actionType,
		TargetType:  targetType,
		TargetID:    targetID,
		Description: description,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		slog.Warn("activity log write failed", "action", actionType, "error", err)
	}
}

func (s *ActivityService) List(limit, offset int) ([]models.ActivityLog, int64, error) {
	var logs []models.ActivityLog
	var total int64

	s.db.Model(&models.ActivityLog{}).Count(&total)
	if err := s.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
