package payouts

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"cliprewards/internal/database"
	"cliprewards/internal/domain"
	"cliprewards/internal/repository"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:payouts_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewService(repository.NewPayoutRepository(db))
}

func TestSaveSettingsCreatesRequestedRow(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	settings, err := svc.SaveSettings(ctx, "user_1", SettingsRequest{
		PaypalEmail: "creator@example.com",
		LegalName:   "Creator One",
		Country:     "US",
	})
	if err != nil {
		t.Fatalf("SaveSettings returned error: %v", err)
	}
	if settings.Status != domain.PayoutRequested {
		t.Fatalf("expected requested status, got %s", settings.Status)
	}
	if settings.PaypalEmail != "creator@example.com" {
		t.Fatalf("unexpected settings: %+v", settings)
	}

	got, err := svc.GetSettings(ctx, "user_1")
	if err != nil {
		t.Fatalf("GetSettings returned error: %v", err)
	}
	if got.ID != settings.ID {
		t.Fatalf("expected same row back")
	}
}

func TestSaveSettingsIsOneRowPerUser(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	first, err := svc.SaveSettings(ctx, "user_1", SettingsRequest{PaypalEmail: "old@example.com"})
	if err != nil {
		t.Fatalf("SaveSettings returned error: %v", err)
	}
	second, err := svc.SaveSettings(ctx, "user_1", SettingsRequest{PaypalEmail: "new@example.com"})
	if err != nil {
		t.Fatalf("second SaveSettings returned error: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected upsert to keep one row, got ids %s and %s", first.ID, second.ID)
	}
	if second.PaypalEmail != "new@example.com" {
		t.Fatalf("expected updated email, got %q", second.PaypalEmail)
	}

	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 row, got %d", len(all))
	}
}

func TestAdminDecisionSurvivesSettingsEdit(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	settings, err := svc.SaveSettings(ctx, "user_1", SettingsRequest{PaypalEmail: "creator@example.com"})
	if err != nil {
		t.Fatalf("SaveSettings returned error: %v", err)
	}

	if err := svc.Approve(ctx, settings.ID); err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}

	updated, err := svc.SaveSettings(ctx, "user_1", SettingsRequest{PaypalEmail: "other@example.com"})
	if err != nil {
		t.Fatalf("SaveSettings after approval returned error: %v", err)
	}
	if updated.Status != domain.PayoutApproved {
		t.Fatalf("expected approval to survive edit, got %s", updated.Status)
	}
	if updated.PaypalEmail != "other@example.com" {
		t.Fatalf("expected edit to apply, got %q", updated.PaypalEmail)
	}
}

func TestRejectPayout(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	settings, err := svc.SaveSettings(ctx, "user_1", SettingsRequest{PaypalEmail: "creator@example.com"})
	if err != nil {
		t.Fatalf("SaveSettings returned error: %v", err)
	}

	if err := svc.Reject(ctx, settings.ID); err != nil {
		t.Fatalf("Reject returned error: %v", err)
	}

	got, err := svc.GetSettings(ctx, "user_1")
	if err != nil {
		t.Fatalf("GetSettings returned error: %v", err)
	}
	if got.Status != domain.PayoutRejected {
		t.Fatalf("expected rejected status, got %s", got.Status)
	}
}

func TestMissingSettings(t *testing.T) {
	svc := setupTestService(t)

	if _, err := svc.GetSettings(context.Background(), "nobody"); !errors.Is(err, ErrPayoutNotFound) {
		t.Fatalf("expected ErrPayoutNotFound, got %v", err)
	}
	if err := svc.Approve(context.Background(), uuid.New()); !errors.Is(err, ErrPayoutNotFound) {
		t.Fatalf("expected ErrPayoutNotFound, got %v", err)
	}
}
