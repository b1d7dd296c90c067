package services

import (
	"errors"

	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/dto"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SavedItemService maintains the (user, content) membership set. The server
// decides the toggle direction; the client only reflects the answer.
type SavedItemService struct {
	db *gorm.DB
}

func NewSavedItemService(db *gorm.DB) *SavedItemService {
	return &SavedItemService{db: db}
}

// Toggle flips membership of (userID, contentType, contentID) and reports
// which direction it went. Toggling twice restores the original state.
func (s *SavedItemService) Toggle(userID uuid.UUID, contentType, contentID string) (*dto.ToggleSavedResponse, error) {
	if contentType == "" || contentID == "" {
		return nil, errors.New("content_type and content_id are required")
	}

	var result dto.ToggleSavedResponse

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.SavedItem
		err := tx.Where("user_id = ? AND content_type = ? AND content_id = ?",
			userID, contentType, contentID).First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			item := models.SavedItem{
				ID:          uuid.New(),
				UserID:      userID,
				ContentType: contentType,
				ContentID:   contentID,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			result = dto.ToggleSavedResponse{Success: true, Message: "Item saved.", Action: dto.SavedActionAdded}
			return nil
		}
		if err != nil {
			return err
		}

		if err := tx.Delete(&existing).Error; err != nil {
			return err
		}
		result = dto.ToggleSavedResponse{Success: true, Message: "Item removed.", Action: dto.SavedActionRemoved}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *SavedItemService) ListForUser(userID uuid.UUID, contentType string) ([]models.SavedItem, error) {
	var items []models.SavedItem
	query := s.db.Where("user_id = ?", userID)
	if contentType != "" {
		query = query.Where("content_type = ?", contentType)
	}
	if err := query.Order("saved_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
