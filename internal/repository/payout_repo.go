package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cliprewards/internal/domain"
)

type PayoutRepository struct {
	db *gorm.DB
}

func NewPayoutRepository(db *gorm.DB) *PayoutRepository {
	return &PayoutRepository{db: db}
}

func (r *PayoutRepository) DB() *gorm.DB { return r.db }

func (r *PayoutRepository) GetByUserID(ctx context.Context, userID string) (*domain.UserPayout, error) {
	var p domain.UserPayout
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert writes the settings row for a user, one row per user. The review
// status is left untouched on update so an admin decision survives a settings
// edit.
func (r *PayoutRepository) Upsert(ctx context.Context, p *domain.UserPayout) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"paypal_email", "legal_name", "bank_name", "account_number",
			"ifsc_swift", "country", "address", "phone", "updated_at",
		}),
	}).Create(p).Error
}

func (r *PayoutRepository) SetStatus(ctx context.Context, id uuid.UUID, status domain.PayoutStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.UserPayout{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PayoutRepository) ListAll(ctx context.Context) ([]domain.UserPayout, error) {
	var payouts []domain.UserPayout
	if err := r.db.WithContext(ctx).Order("user_id ASC").Find(&payouts).Error; err != nil {
		return nil, err
	}
	return payouts, nil
}
