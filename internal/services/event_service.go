package services

import (
	"errors"
	"fmt"

	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/dto"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

// EventService owns event CRUD and the registration counter. The counter is
// only ever adjusted inside a transaction that holds the event row lock, so
// two registrations racing for the last slot cannot both succeed.
type EventService struct {
	db       *gorm.DB
	activity *ActivityService
}

func NewEventService(db *gorm.DB, activity *ActivityService) *EventService {
	return &EventService{db: db, activity: activity}
}

func (s *EventService) Create(adminID uuid.UUID, req *dto.CreateEventRequest) (*models.Event, error) {
	if req.Title == "" {
		return nil, errors.New("title is required")
	}

	status := req.Status
	if status == "" {
		status = models.EventUpcoming
	}

	event := models.Event{
		ID:              uuid.New(),
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Location:        req.Location,
		ImageURL:        req.ImageURL,
		MaxParticipants: req.MaxParticipants,
		Status:          status,
	}

	if err := s.db.Create(&event).Error; err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.activity.Log(adminID, "create_event", "event", event.ID.String(), event.Title)
	return &event, nil
}

func (s *EventService) Update(adminID, eventID uuid.UUID, req *dto.UpdateEventRequest) (*models.Event, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.MaxParticipants != nil {
		updates["max_participants"] = *req.MaxParticipants
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		result := s.db.Model(&models.Event{}).Where("id = ?", eventID).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrEventNotFound
		}
	}

	s.activity.Log(adminID, "update_event", "event", eventID.String(), "")
	return s.Get(eventID)
}

func (s *EventService) Delete(adminID, eventID uuid.UUID) error {
	result := s.db.Delete(&models.Event{}, "id = ?", eventID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	s.activity.Log(adminID, "delete_event", "event", eventID.String(), "")
	return nil
}

func (s *EventService) Get(eventID uuid.UUID) (*models.Event, error) {
	var event models.Event
	if err := s.db.First(&event, "id = ?", eventID).Error; err != nil {
		return nil, ErrEventNotFound
	}
	return &event, nil
}

func (s *EventService) List(status string, limit, offset int) ([]models.Event, int64, error) {
	var events []models.Event
	var total int64

	query := s.db.Model(&models.Event{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Count(&total)

	if err := query.Order("date ASC").Limit(limit).Offset(offset).Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// Register claims a spot at the event. One transaction: the event row is
// locked, duplicates and capacity are checked against it, the registration
// row is written and the counter incremented. Full events and duplicate
// registrations are normal Success=false results.
func (s *EventService) Register(userID, eventID uuid.UUID) (*dto.RegistrationResult, error) {
	var result dto.RegistrationResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		err := lockForUpdate(tx).First(&event, "id = ?", eventID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			result = dto.RegistrationResult{Success: false, Message: "Event not found."}
			return nil
		}
		if err != nil {
			return err
		}

		if event.Status == models.EventCompleted || event.Status == models.EventCancelled {
			result = dto.RegistrationResult{Success: false, Message: "Registration is closed for this event."}
			return nil
		}

		var existing models.EventRegistration
		if err := tx.Where("user_id = ? AND event_id = ?", userID, eventID).First(&existing).Error; err == nil {
			result = dto.RegistrationResult{Success: false, Message: "You are already registered for this event."}
			return nil
		}

		if event.MaxParticipants != nil && event.CurrentParticipants >= *event.MaxParticipants {
			result = dto.RegistrationResult{Success: false, Message: "This event is full."}
			return nil
		}

		registration := models.EventRegistration{
			ID:      uuid.New(),
			UserID:  userID,
			EventID: eventID,
		}
		if err := tx.Create(&registration).Error; err != nil {
			return err
		}

		if err := tx.Model(&event).
			Update("current_participants", event.CurrentParticipants+1).Error; err != nil {
			return err
		}

		result = dto.RegistrationResult{Success: true, Message: "Registered for event."}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Unregister releases the caller's spot. The counter never drops below zero.
func (s *EventService) Unregister(userID, eventID uuid.UUID) (*dto.RegistrationResult, error) {
	var result dto.RegistrationResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		err := lockForUpdate(tx).First(&event, "id = ?", eventID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			result = dto.RegistrationResult{Success: false, Message: "Event not found."}
			return nil
		}
		if err != nil {
			return err
		}

		deleted := tx.Where("user_id = ? AND event_id = ?", userID, eventID).
			Delete(&models.EventRegistration{})
		if deleted.Error != nil {
			return deleted.Error
		}
		if deleted.RowsAffected == 0 {
			result = dto.RegistrationResult{Success: false, Message: "You are not registered for this event."}
			return nil
		}

		next := event.CurrentParticipants - 1
		if next < 0 {
			next = 0
		}
		if err := tx.Model(&event).Update("current_participants", next).Error; err != nil {
			return err
		}

		result = dto.RegistrationResult{Success: true, Message: "Unregistered from event."}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *EventService) ListRegistrations(userID uuid.UUID) ([]models.EventRegistration, error) {
	var registrations []models.EventRegistration
	if err := s.db.Preload("Event").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&registrations).Error; err != nil {
		return nil, err
	}
	return registrations, nil
}
