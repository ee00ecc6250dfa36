package users

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cliprewards/internal/domain"
	"cliprewards/internal/modules/earnings"
	"cliprewards/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

// Overview is one row of the admin user table: the synced identity record
// plus its moderation and ledger footprint.
type Overview struct {
	domain.User
	TotalClips         int     `json:"total_clips"`
	TotalApprovedClips int     `json:"total_approved_clips"`
	TotalEarnings      float64 `json:"total_earnings"`
}

type Service struct {
	repo *repository.UserRepository
}

func NewService(repo *repository.UserRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListOverview(ctx context.Context) ([]Overview, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	db := s.repo.DB().WithContext(ctx)

	var clips []domain.Clip
	if err := db.Find(&clips).Error; err != nil {
		return nil, err
	}
	var entries []domain.Earning
	if err := db.Find(&entries).Error; err != nil {
		return nil, err
	}

	roster := make([]string, 0, len(all))
	for _, u := range all {
		roster = append(roster, u.ProviderID)
	}
	totals := earnings.TotalsByUser(entries, roster)

	clipCount := make(map[string]int, len(all))
	approvedCount := make(map[string]int, len(all))
	for _, c := range clips {
		clipCount[c.UserID]++
		if c.Status == domain.ClipApproved {
			approvedCount[c.UserID]++
		}
	}

	overviews := make([]Overview, 0, len(all))
	for _, u := range all {
		overviews = append(overviews, Overview{
			User:               u,
			TotalClips:         clipCount[u.ProviderID],
			TotalApprovedClips: approvedCount[u.ProviderID],
			TotalEarnings:      totals[u.ProviderID],
		})
	}
	return overviews, nil
}

func (s *Service) SetRole(ctx context.Context, providerID string, role domain.UserRole) error {
	if err := s.repo.SetRole(ctx, providerID, role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
