package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PayoutStatus string

const (
	PayoutNone      PayoutStatus = "none"
	PayoutRequested PayoutStatus = "requested"
	PayoutApproved  PayoutStatus = "approved"
	PayoutRejected  PayoutStatus = "rejected"
)

// UserPayout holds one row of payout settings per user, upserted from the
// dashboard and reviewed by admins.
type UserPayout struct {
	ID            uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID        string       `json:"user_id" gorm:"not null;uniqueIndex"`
	PaypalEmail   string       `json:"paypal_email"`
	LegalName     string       `json:"legal_name"`
	BankName      string       `json:"bank_name"`
	AccountNumber string       `json:"account_number"`
	IFSCSwift     string       `json:"ifsc_swift" gorm:"column:ifsc_swift"`
	Country       string       `json:"country"`
	Address       string       `json:"address"`
	Phone         string       `json:"phone"`
	Status        PayoutStatus `json:"status" gorm:"type:varchar(16);not null;default:'none'"`
	CreatedAt     time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

func (UserPayout) TableName() string { return "user_payouts" }

func (p *UserPayout) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
