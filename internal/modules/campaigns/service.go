package campaigns

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cliprewards/internal/domain"
	"cliprewards/internal/repository"
)

var ErrCampaignNotFound = errors.New("campaign not found")

type Service struct {
	repo *repository.CampaignRepository
}

func NewService(repo *repository.CampaignRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Campaign, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, req CampaignRequest) (*domain.Campaign, error) {
	c := &domain.Campaign{}
	apply(c, req)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the campaign configuration. Rate changes apply to future
// approvals only; the ledger is never touched here.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req CampaignRequest) (*domain.Campaign, error) {
	c := &domain.Campaign{ID: id}
	apply(c, req)
	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCampaignNotFound
		}
		return err
	}
	return nil
}

func apply(c *domain.Campaign, req CampaignRequest) {
	c.Name = req.Name
	c.Description = req.Description
	c.RPMYouTube = req.RPMYouTube
	c.RPMTikTok = req.RPMTikTok
	c.RPMInstagram = req.RPMInstagram
	c.RPMX = req.RPMX
	c.YouTubeEnabled = req.YouTubeEnabled
	c.TikTokEnabled = req.TikTokEnabled
	c.InstagramEnabled = req.InstagramEnabled
	c.XEnabled = req.XEnabled
	c.SOPText = req.SOPText
	c.SOPURL = req.SOPURL
}
