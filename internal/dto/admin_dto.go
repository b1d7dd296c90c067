package dto

import "encoding/json"

type PromoteByEmailRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type SetRoleRequest struct {
	Role string `json:"role"`
}

type SetBlockedRequest struct {
	Blocked bool `json:"blocked"`
}

type SetSettingRequest struct {
	Value json.RawMessage `json:"value"`
}
