package dto

import (
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	FullName   string `json:"full_name,omitempty"`
	Username   string `json:"username,omitempty"`
	InviteCode string `json:"invite_code,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username,omitempty"`
	Role     string    `json:"role"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
	// Destination is the post-login surface: "admin" or "dashboard".
	Destination string `json:"destination,omitempty"`
	// Invite reports the outcome when an invite code was submitted with
	// registration; absent otherwise.
	Invite *RedeemResult `json:"invite,omitempty"`
}

type UpdateProfileRequest struct {
	FullName  *string `json:"full_name,omitempty"`
	Username  *string `json:"username,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	Website   *string `json:"website,omitempty"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
	Cache     string `json:"cache"`
}
