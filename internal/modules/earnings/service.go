package earnings

import (
	"context"

	"gorm.io/gorm"

	"cliprewards/internal/domain"
)

const leaderboardSize = 5

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type Totals struct {
	TotalUsers         int     `json:"total_users"`
	TotalClips         int     `json:"total_clips"`
	TotalApprovedClips int     `json:"total_approved_clips"`
	TotalCampaigns     int     `json:"total_campaigns"`
	TotalEarnings      float64 `json:"total_earnings"`
}

// AnalyticsReport is the full aggregation document served to the admin
// dashboard, recomputed from a fresh ledger snapshot on every request.
type AnalyticsReport struct {
	Totals               Totals                                 `json:"totals"`
	EarningsPerUser      map[string]float64                     `json:"earnings_per_user"`
	EarningsPerPlatform  map[domain.Platform]float64            `json:"earnings_per_platform"`
	EarningsUserPlatform map[string]map[domain.Platform]float64 `json:"earnings_user_platform"`
	CampaignStats        []CampaignStat                         `json:"campaign_stats"`
	Leaderboard          []LeaderboardEntry                     `json:"leaderboard"`
}

func (s *Service) BuildAnalytics(ctx context.Context) (*AnalyticsReport, error) {
	var users []domain.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}

	var clips []domain.Clip
	if err := s.db.WithContext(ctx).Find(&clips).Error; err != nil {
		return nil, err
	}

	var entries []domain.Earning
	if err := s.db.WithContext(ctx).Find(&entries).Error; err != nil {
		return nil, err
	}

	var campaigns []domain.Campaign
	if err := s.db.WithContext(ctx).Find(&campaigns).Error; err != nil {
		return nil, err
	}

	roster := make([]string, 0, len(users))
	for _, u := range users {
		roster = append(roster, u.ProviderID)
	}

	approved := 0
	for _, c := range clips {
		if c.Status == domain.ClipApproved {
			approved++
		}
	}

	perUser := TotalsByUser(entries, roster)

	return &AnalyticsReport{
		Totals: Totals{
			TotalUsers:         len(users),
			TotalClips:         len(clips),
			TotalApprovedClips: approved,
			TotalCampaigns:     len(campaigns),
			TotalEarnings:      Total(entries),
		},
		EarningsPerUser:      perUser,
		EarningsPerPlatform:  TotalsByPlatform(entries),
		EarningsUserPlatform: TotalsByUserPlatform(entries, roster),
		CampaignStats:        CampaignStats(campaigns, clips, entries),
		Leaderboard:          Leaderboard(perUser, leaderboardSize),
	}, nil
}

// UserLedger is a creator's own view of the ledger.
type UserLedger struct {
	Entries     []domain.Earning            `json:"entries"`
	Total       float64                     `json:"total"`
	PerPlatform map[domain.Platform]float64 `json:"per_platform"`
}

func (s *Service) LedgerForUser(ctx context.Context, userID string) (*UserLedger, error) {
	var entries []domain.Earning
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return &UserLedger{
		Entries:     entries,
		Total:       Total(entries),
		PerPlatform: TotalsByPlatform(entries),
	}, nil
}
