package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EventUpcoming  = "upcoming"
	EventOngoing   = "ongoing"
	EventCompleted = "completed"
	EventCancelled = "cancelled"
)

// Event is a club event with an optional participant cap. The counter is only
// mutated inside registration transactions, never written directly by clients.
type Event struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title               string         `gorm:"size:255;not null" json:"title"`
	Description         string         `gorm:"type:text" json:"description"`
	Date                time.Time      `gorm:"not null;index" json:"date"`
	Location            string         `gorm:"size:255" json:"location"`
	ImageURL            string         `gorm:"size:500" json:"image_url"`
	MaxParticipants     *int           `json:"max_participants,omitempty"`
	CurrentParticipants int            `gorm:"default:0" json:"current_participants"`
	Status              string         `gorm:"size:20;default:'upcoming';index" json:"status"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (Event) TableName() string {
	return "events"
}

// EventRegistration records one user's spot at one event.
type EventRegistration struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_event_reg_user_event" json:"user_id"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_event_reg_user_event" json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
	Event     Event     `gorm:"foreignKey:EventID" json:"-"`
}

func (r *EventRegistration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (EventRegistration) TableName() string {
	return "event_registrations"
}
