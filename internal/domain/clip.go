package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClipStatus string

const (
	ClipPending  ClipStatus = "pending"
	ClipApproved ClipStatus = "approved"
	ClipRejected ClipStatus = "rejected"
)

// Clip is a submitted piece of content awaiting a moderation decision.
// Status moves pending -> approved|rejected exactly once; both outcomes are
// terminal. Earnings stays 0 until approval sets it, in the same transaction
// that appends the ledger entry.
type Clip struct {
	ID                uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID            string     `json:"user_id" gorm:"not null;index"`
	CampaignID        uuid.UUID  `json:"campaign_id" gorm:"type:uuid;not null;index"`
	VerifiedAccountID uuid.UUID  `json:"verified_account_id" gorm:"type:uuid;not null"`
	AccountUsername   string     `json:"account_username"`
	Platform          Platform   `json:"platform" gorm:"type:varchar(16);not null;index"`
	ClipURL           string     `json:"clip_url" gorm:"column:clip_url;not null"`
	Views             int64      `json:"views" gorm:"not null;default:0"`
	Status            ClipStatus `json:"status" gorm:"type:varchar(16);not null;default:'pending';index"`
	Earnings          float64    `json:"earnings" gorm:"not null;default:0"`
	CreatedAt         time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Clip) TableName() string { return "clips" }

func (c *Clip) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
