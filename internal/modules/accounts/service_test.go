package accounts

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cliprewards/internal/database"
	"cliprewards/internal/domain"
	"cliprewards/internal/repository"
)

type stubScraper struct {
	bio   string
	err   error
	calls int
}

func (s *stubScraper) FetchBio(_ context.Context, _ domain.Platform, _ string) (string, error) {
	s.calls++
	return s.bio, s.err
}

func setupTestService(t *testing.T, scraper BioScraper) (*Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:accounts_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewService(repository.NewVerificationRepository(db), scraper), db
}

var codeFormat = regexp.MustCompile(`^CLIP-\d{5}$`)

func TestGenerateCodeCreatesEntry(t *testing.T) {
	svc, db := setupTestService(t, &stubScraper{})

	account, err := svc.GenerateCode(context.Background(), "user_1", GenerateCodeRequest{
		Platform: "instagram",
		Username: "  creator_one  ",
	})
	if err != nil {
		t.Fatalf("GenerateCode returned error: %v", err)
	}

	if !codeFormat.MatchString(account.VerificationCode) {
		t.Fatalf("unexpected code format: %q", account.VerificationCode)
	}
	if account.IsVerified {
		t.Fatalf("expected fresh entry to be unverified")
	}
	if account.Username != "creator_one" {
		t.Fatalf("expected trimmed username, got %q", account.Username)
	}

	var stored domain.VerifiedAccount
	if err := db.First(&stored, "id = ?", account.ID).Error; err != nil {
		t.Fatalf("entry not persisted: %v", err)
	}
	if stored.Platform != domain.PlatformInstagram {
		t.Fatalf("expected instagram platform, got %s", stored.Platform)
	}
}

func TestGenerateCodeRejectsUnknownPlatform(t *testing.T) {
	svc, _ := setupTestService(t, &stubScraper{})

	_, err := svc.GenerateCode(context.Background(), "user_1", GenerateCodeRequest{
		Platform: "myspace",
		Username: "creator_one",
	})
	if !errors.Is(err, ErrPlatformUnknown) {
		t.Fatalf("expected ErrPlatformUnknown, got %v", err)
	}
}

func TestCheckMarksVerifiedWhenCodeInBio(t *testing.T) {
	scraper := &stubScraper{}
	svc, db := setupTestService(t, scraper)
	ctx := context.Background()

	account, err := svc.GenerateCode(ctx, "user_1", GenerateCodeRequest{Platform: "youtube", Username: "creator_one"})
	if err != nil {
		t.Fatalf("GenerateCode returned error: %v", err)
	}
	scraper.bio = "links below | " + account.VerificationCode + " | business inquiries in dm"

	result, err := svc.Check(ctx, "user_1", account.ID)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if !result.Verified {
		t.Fatalf("expected verified result, got %+v", result)
	}

	var stored domain.VerifiedAccount
	if err := db.First(&stored, "id = ?", account.ID).Error; err != nil {
		t.Fatalf("failed to reload entry: %v", err)
	}
	if !stored.IsVerified || stored.VerifiedAt == nil {
		t.Fatalf("expected entry marked verified with timestamp, got %+v", stored)
	}
}

func TestCheckRejectsMissingCode(t *testing.T) {
	scraper := &stubScraper{bio: "just a regular bio"}
	svc, db := setupTestService(t, scraper)
	ctx := context.Background()

	account, err := svc.GenerateCode(ctx, "user_1", GenerateCodeRequest{Platform: "tiktok", Username: "creator_one"})
	if err != nil {
		t.Fatalf("GenerateCode returned error: %v", err)
	}

	result, err := svc.Check(ctx, "user_1", account.ID)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if result.Verified {
		t.Fatalf("expected unverified result")
	}

	var stored domain.VerifiedAccount
	if err := db.First(&stored, "id = ?", account.ID).Error; err != nil {
		t.Fatalf("failed to reload entry: %v", err)
	}
	if stored.IsVerified {
		t.Fatalf("expected entry to stay unverified")
	}
}

func TestCheckScopedToOwner(t *testing.T) {
	svc, _ := setupTestService(t, &stubScraper{bio: "whatever"})
	ctx := context.Background()

	account, err := svc.GenerateCode(ctx, "user_1", GenerateCodeRequest{Platform: "x", Username: "creator_one"})
	if err != nil {
		t.Fatalf("GenerateCode returned error: %v", err)
	}

	if _, err := svc.Check(ctx, "someone_else", account.ID); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestCheckMissingEntry(t *testing.T) {
	svc, _ := setupTestService(t, &stubScraper{})

	if _, err := svc.Check(context.Background(), "user_1", uuid.New()); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestCheckWrapsScraperFailure(t *testing.T) {
	scraper := &stubScraper{err: errors.New("connection refused")}
	svc, _ := setupTestService(t, scraper)
	ctx := context.Background()

	account, err := svc.GenerateCode(ctx, "user_1", GenerateCodeRequest{Platform: "instagram", Username: "creator_one"})
	if err != nil {
		t.Fatalf("GenerateCode returned error: %v", err)
	}

	if _, err := svc.Check(ctx, "user_1", account.ID); !errors.Is(err, ErrScrapeFailed) {
		t.Fatalf("expected ErrScrapeFailed, got %v", err)
	}
}

func TestCheckShortCircuitsVerifiedEntry(t *testing.T) {
	scraper := &stubScraper{}
	svc, _ := setupTestService(t, scraper)
	ctx := context.Background()

	account, err := svc.GenerateCode(ctx, "user_1", GenerateCodeRequest{Platform: "youtube", Username: "creator_one"})
	if err != nil {
		t.Fatalf("GenerateCode returned error: %v", err)
	}
	scraper.bio = account.VerificationCode
	if _, err := svc.Check(ctx, "user_1", account.ID); err != nil {
		t.Fatalf("first Check returned error: %v", err)
	}

	result, err := svc.Check(ctx, "user_1", account.ID)
	if err != nil {
		t.Fatalf("second Check returned error: %v", err)
	}
	if !result.Verified {
		t.Fatalf("expected verified result")
	}
	if scraper.calls != 1 {
		t.Fatalf("expected a single scrape, got %d", scraper.calls)
	}

	accounts, err := svc.ListVerified(ctx, "user_1")
	if err != nil {
		t.Fatalf("ListVerified returned error: %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("expected 1 verified account, got %d", len(accounts))
	}
}
