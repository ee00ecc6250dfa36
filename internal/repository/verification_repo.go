package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cliprewards/internal/domain"
)

type VerificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

func (r *VerificationRepository) DB() *gorm.DB { return r.db }

func (r *VerificationRepository) Create(ctx context.Context, a *domain.VerifiedAccount) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// GetForUser returns the account only when it belongs to the given user, so
// one creator can never verify or submit through another creator's account.
func (r *VerificationRepository) GetForUser(ctx context.Context, id uuid.UUID, userID string) (*domain.VerifiedAccount, error) {
	var a domain.VerifiedAccount
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&a)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &a, nil
}

func (r *VerificationRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	tx := r.db.WithContext(ctx).
		Model(&domain.VerifiedAccount{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_verified": true, "verified_at": &now})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *VerificationRepository) ListVerifiedByUser(ctx context.Context, userID string) ([]domain.VerifiedAccount, error) {
	var accounts []domain.VerifiedAccount
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_verified = ?", userID, true).
		Order("verified_at DESC").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}
