package accounts

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cliprewards/internal/domain"
	"cliprewards/internal/repository"
)

var (
	ErrAccountNotFound = errors.New("verification entry not found")
	ErrPlatformUnknown = errors.New("unknown platform")
	ErrScrapeFailed    = errors.New("could not fetch profile bio")
)

type Service struct {
	repo    *repository.VerificationRepository
	scraper BioScraper
}

func NewService(repo *repository.VerificationRepository, scraper BioScraper) *Service {
	return &Service{repo: repo, scraper: scraper}
}

// GenerateCode opens a verification attempt for a handle and hands back the
// code the creator must place in the profile bio.
func (s *Service) GenerateCode(ctx context.Context, userID string, req GenerateCodeRequest) (*domain.VerifiedAccount, error) {
	platform, ok := domain.ParsePlatform(req.Platform)
	if !ok {
		return nil, ErrPlatformUnknown
	}

	account := &domain.VerifiedAccount{
		UserID:           userID,
		Platform:         platform,
		Username:         strings.TrimSpace(req.Username),
		VerificationCode: newVerificationCode(),
		IsVerified:       false,
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Check scrapes the profile bio and marks the account verified when the code
// is present. A bio without the code is not an error, just a negative result
// the creator can retry.
func (s *Service) Check(ctx context.Context, userID string, verificationID uuid.UUID) (*CheckResult, error) {
	account, err := s.repo.GetForUser(ctx, verificationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if account.IsVerified {
		return &CheckResult{Verified: true, Message: "Account already verified"}, nil
	}

	bio, err := s.scraper.FetchBio(ctx, account.Platform, account.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScrapeFailed, err)
	}

	if !strings.Contains(bio, account.VerificationCode) {
		return &CheckResult{Verified: false, Message: "Code not found in bio"}, nil
	}

	if err := s.repo.MarkVerified(ctx, account.ID); err != nil {
		return nil, err
	}
	return &CheckResult{Verified: true, Message: "Account successfully verified"}, nil
}

func (s *Service) ListVerified(ctx context.Context, userID string) ([]domain.VerifiedAccount, error) {
	return s.repo.ListVerifiedByUser(ctx, userID)
}

func newVerificationCode() string {
	return fmt.Sprintf("CLIP-%d", 10000+rand.Intn(90000))
}
