package payouts

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cliprewards/internal/domain"
	"cliprewards/internal/repository"
)

var ErrPayoutNotFound = errors.New("payout settings not found")

type Service struct {
	repo *repository.PayoutRepository
}

func NewService(repo *repository.PayoutRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetSettings(ctx context.Context, userID string) (*domain.UserPayout, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPayoutNotFound
		}
		return nil, err
	}
	return p, nil
}

// SaveSettings upserts the single settings row for a user. The first save
// puts the row under admin review; later edits update the details without
// resetting a decision already made.
func (s *Service) SaveSettings(ctx context.Context, userID string, req SettingsRequest) (*domain.UserPayout, error) {
	p := &domain.UserPayout{
		UserID:        userID,
		PaypalEmail:   req.PaypalEmail,
		LegalName:     req.LegalName,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		IFSCSwift:     req.IFSCSwift,
		Country:       req.Country,
		Address:       req.Address,
		Phone:         req.Phone,
		Status:        domain.PayoutRequested,
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return s.GetSettings(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.UserPayout, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) Approve(ctx context.Context, id uuid.UUID) error {
	return s.setStatus(ctx, id, domain.PayoutApproved)
}

func (s *Service) Reject(ctx context.Context, id uuid.UUID) error {
	return s.setStatus(ctx, id, domain.PayoutRejected)
}

func (s *Service) setStatus(ctx context.Context, id uuid.UUID, status domain.PayoutStatus) error {
	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPayoutNotFound
		}
		return err
	}
	return nil
}
