package clips

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"cliprewards/internal/domain"
	"cliprewards/internal/modules/earnings"
)

type Service struct {
	db       *gorm.DB
	notifier Notifier
}

func NewService(db *gorm.DB, notifier Notifier) *Service {
	return &Service{db: db, notifier: notifier}
}

// Submit records a new pending clip. The platform comes from the URL, never
// from the client, and must match the verified account the clip is submitted
// under.
func (s *Service) Submit(ctx context.Context, userID string, req SubmitClipRequest) (*domain.Clip, error) {
	platform := domain.DetectPlatform(req.ClipURL)
	if platform == domain.PlatformUnknown {
		return nil, ErrPlatformUnknown
	}

	var campaign domain.Campaign
	if err := s.db.WithContext(ctx).First(&campaign, "id = ?", req.CampaignID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	if !campaign.PlatformEnabled(platform) {
		return nil, ErrPlatformDisabled
	}

	var account domain.VerifiedAccount
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", req.VerifiedAccountID, userID).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	if !account.IsVerified {
		return nil, ErrAccountNotVerified
	}
	if account.Platform != platform {
		return nil, ErrPlatformMismatch
	}

	clip := &domain.Clip{
		UserID:            userID,
		CampaignID:        campaign.ID,
		VerifiedAccountID: account.ID,
		AccountUsername:   account.Username,
		Platform:          platform,
		ClipURL:           req.ClipURL,
		Views:             0,
		Status:            domain.ClipPending,
	}
	if err := s.db.WithContext(ctx).Create(clip).Error; err != nil {
		return nil, err
	}

	s.notify(EventClipSubmitted, clip)
	return clip, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Clip, error) {
	var clips []domain.Clip
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&clips).Error
	return clips, err
}

func (s *Service) ListAll(ctx context.Context, filter ClipListFilter) ([]domain.Clip, error) {
	q := s.db.WithContext(ctx).Order("created_at DESC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var clips []domain.Clip
	err := q.Find(&clips).Error
	return clips, err
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Clip, error) {
	var clip domain.Clip
	if err := s.db.WithContext(ctx).First(&clip, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClipNotFound
		}
		return nil, err
	}
	return &clip, nil
}

// UpdateViews sets the view count on a pending clip. A resolved clip's count
// is frozen; the earnings written at approval would otherwise drift from it.
func (s *Service) UpdateViews(ctx context.Context, id uuid.UUID, views int64) (*domain.Clip, error) {
	res := s.db.WithContext(ctx).
		Model(&domain.Clip{}).
		Where("id = ? AND status = ?", id, domain.ClipPending).
		Updates(map[string]interface{}{"views": views, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// distinguish a missing clip from a resolved one
		if _, err := s.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrAlreadyResolved
	}

	return s.GetByID(ctx, id)
}

// Approve resolves a pending clip, computes its payout from the campaign RPM
// at this moment, and appends the ledger entry, all in one transaction. The
// status update is a compare-and-swap on pending and the ledger carries a
// unique index on clip_id, so two concurrent approvals cannot both pay out.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) (*domain.Clip, error) {
	var clip domain.Clip

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&clip, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClipNotFound
			}
			return err
		}
		if clip.Status != domain.ClipPending {
			return ErrAlreadyResolved
		}

		var campaign domain.Campaign
		if err := tx.First(&campaign, "id = ?", clip.CampaignID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCampaignNotFound
			}
			return err
		}

		rpm, ok := campaign.RPMFor(clip.Platform)
		if !ok {
			return ErrRPMNotConfigured
		}
		amount := earnings.Amount(clip.Views, rpm)

		res := tx.Model(&domain.Clip{}).
			Where("id = ? AND status = ?", id, domain.ClipPending).
			Updates(map[string]interface{}{
				"status":     domain.ClipApproved,
				"earnings":   amount,
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyResolved
		}

		entry := domain.Earning{
			ClipID:     clip.ID,
			UserID:     clip.UserID,
			CampaignID: clip.CampaignID,
			Platform:   clip.Platform,
			Amount:     amount,
		}
		if err := tx.Create(&entry).Error; err != nil {
			if isUniqueConstraintError(err) {
				return ErrAlreadyResolved
			}
			return err
		}

		clip.Status = domain.ClipApproved
		clip.Earnings = amount
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(EventClipApproved, &clip)
	return &clip, nil
}

// Reject resolves a pending clip with zero earnings. No ledger entry is
// written and the campaign is never consulted, so a clip on a misconfigured
// campaign can still be rejected.
func (s *Service) Reject(ctx context.Context, id uuid.UUID) (*domain.Clip, error) {
	res := s.db.WithContext(ctx).
		Model(&domain.Clip{}).
		Where("id = ? AND status = ?", id, domain.ClipPending).
		Updates(map[string]interface{}{
			"status":     domain.ClipRejected,
			"earnings":   float64(0),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := s.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrAlreadyResolved
	}

	clip, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notify(EventClipRejected, clip)
	return clip, nil
}

func (s *Service) notify(event string, clip *domain.Clip) {
	if s.notifier != nil {
		s.notifier.Publish(event, clip)
	}
}

func isUniqueConstraintError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique failed")
}
