package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cliprewards/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) DB() *gorm.DB { return r.db }

func (r *UserRepository) GetByProviderID(ctx context.Context, providerID string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).Where("provider_id = ?", providerID).First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

// Upsert creates the user on first sight of the provider id and refreshes the
// email afterwards. The locally assigned role is never overwritten by a sync.
func (r *UserRepository) Upsert(ctx context.Context, providerID, email string) (*domain.User, error) {
	u := domain.User{
		ProviderID: providerID,
		Email:      strings.TrimSpace(strings.ToLower(email)),
		Role:       domain.RoleCreator,
	}

	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "provider_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "updated_at"}),
	}).Create(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}

	return r.GetByProviderID(ctx, providerID)
}

func (r *UserRepository) SetRole(ctx context.Context, providerID string, role domain.UserRole) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("provider_id = ?", providerID).
		Update("role", role)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
