package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cliprewards/internal/domain"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func (r *CampaignRepository) DB() *gorm.DB { return r.db }

func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CampaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	var c domain.Campaign
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	tx := r.db.WithContext(ctx).Model(&domain.Campaign{}).Where("id = ?", c.ID).Updates(map[string]any{
		"name":              c.Name,
		"description":       c.Description,
		"rpm_youtube":       c.RPMYouTube,
		"rpm_tiktok":        c.RPMTikTok,
		"rpm_instagram":     c.RPMInstagram,
		"rpm_x":             c.RPMX,
		"youtube_enabled":   c.YouTubeEnabled,
		"tiktok_enabled":    c.TikTokEnabled,
		"instagram_enabled": c.InstagramEnabled,
		"x_enabled":         c.XEnabled,
		"sop_text":          c.SOPText,
		"sop_url":           c.SOPURL,
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Campaign{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CampaignRepository) ListAll(ctx context.Context) ([]domain.Campaign, error) {
	var campaigns []domain.Campaign
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}
