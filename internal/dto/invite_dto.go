package dto

import "time"

type CreateInviteRequest struct {
	Role          string `json:"role"`
	ExpiresInDays int    `json:"expires_in_days"`
}

type InviteCreatedResponse struct {
	Code      string    `json:"code"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ValidateInviteResponse is a read-only validity report. Invalid, used and
// expired codes are normal outcomes, not errors.
type ValidateInviteResponse struct {
	Valid     bool       `json:"is_valid"`
	Role      string     `json:"role,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Reason    string     `json:"reason,omitempty"`
}

type RedeemInviteRequest struct {
	Code string `json:"code"`
}

// RedeemResult is the structured outcome of a redemption attempt. Success
// false means the code was invalid, used or expired.
type RedeemResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Role    string `json:"role,omitempty"`
}
