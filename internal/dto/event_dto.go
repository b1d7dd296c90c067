package dto

import "time"

type CreateEventRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date"`
	Location        string    `json:"location"`
	ImageURL        string    `json:"image_url"`
	MaxParticipants *int      `json:"max_participants,omitempty"`
	Status          string    `json:"status,omitempty"`
}

type UpdateEventRequest struct {
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Date            *time.Time `json:"date,omitempty"`
	Location        *string    `json:"location,omitempty"`
	ImageURL        *string    `json:"image_url,omitempty"`
	MaxParticipants *int       `json:"max_participants,omitempty"`
	Status          *string    `json:"status,omitempty"`
}

// RegistrationResult reports a register/unregister outcome. A full event or a
// duplicate registration is a normal Success=false outcome.
type RegistrationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ToggleSavedRequest struct {
	ContentType string `json:"content_type"`
	ContentID   string `json:"content_id"`
}

const (
	SavedActionAdded   = "added"
	SavedActionRemoved = "removed"
)

// ToggleSavedResponse reflects the server-decided toggle direction.
type ToggleSavedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Action  string `json:"action"`
}
