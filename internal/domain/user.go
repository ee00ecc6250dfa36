package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleCreator UserRole = "creator"
	RoleAdmin   UserRole = "admin"
)

// User mirrors an identity-provider account. Rows are created and updated by
// the provider webhook; the role is assigned locally (seed or admin action),
// never taken from the provider payload.
type User struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProviderID string    `json:"provider_id" gorm:"not null;uniqueIndex"`
	Email      string    `json:"email"`
	Role       UserRole  `json:"role" gorm:"type:varchar(16);not null;default:'creator'"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
