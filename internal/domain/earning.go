package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Earning is one append-only ledger entry, written when a clip is approved.
// The unique index on ClipID is the storage-level guard against a concurrent
// double approval creating two entries for the same clip. Entries are never
// updated or deleted; the ledger, not Clip.Earnings, is the source of truth
// for every aggregation.
type Earning struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ClipID     uuid.UUID `json:"clip_id" gorm:"type:uuid;not null;uniqueIndex"`
	UserID     string    `json:"user_id" gorm:"not null;index"`
	CampaignID uuid.UUID `json:"campaign_id" gorm:"type:uuid;not null;index"`
	Platform   Platform  `json:"platform" gorm:"type:varchar(16);not null;index"`
	Amount     float64   `json:"amount" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Earning) TableName() string { return "earnings" }

func (e *Earning) BeforeCreate(_ *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
