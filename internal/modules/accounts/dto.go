package accounts

import "github.com/google/uuid"

type GenerateCodeRequest struct {
	Platform string `json:"platform" validate:"required"`
	Username string `json:"username" validate:"required"`
}

type CheckRequest struct {
	VerificationID uuid.UUID `json:"verification_id" validate:"required"`
}

type CheckResult struct {
	Verified bool   `json:"verified"`
	Message  string `json:"message"`
}
