package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VerifiedAccount links a social handle to a user. Ownership is proven by
// placing a one-time CLIP-xxxxx code in the profile bio; until the check
// passes the account cannot be used for clip submission.
type VerifiedAccount struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID           string     `json:"user_id" gorm:"not null;index"`
	Platform         Platform   `json:"platform" gorm:"type:varchar(16);not null"`
	Username         string     `json:"username" gorm:"not null"`
	VerificationCode string     `json:"verification_code" gorm:"not null"`
	IsVerified       bool       `json:"is_verified" gorm:"not null;default:false;index"`
	VerifiedAt       *time.Time `json:"verified_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

func (VerifiedAccount) TableName() string { return "verified_accounts" }

func (a *VerifiedAccount) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
