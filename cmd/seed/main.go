package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"cliprewards/internal/database"
	"cliprewards/internal/domain"
	jwtsvc "cliprewards/internal/pkg/jwt"
	"cliprewards/internal/repository"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "clips.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM earnings")
	db.Exec("DELETE FROM clips")
	db.Exec("DELETE FROM verified_accounts")
	db.Exec("DELETE FROM user_payouts")
	db.Exec("DELETE FROM campaigns")
	db.Exec("DELETE FROM users")

	users := repository.NewUserRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	admin, err := users.Upsert(ctx, "user_admin", "admin@cliprewards.io")
	if err != nil {
		log.Fatal("admin upsert failed:", err)
	}
	if err := users.SetRole(ctx, admin.ProviderID, domain.RoleAdmin); err != nil {
		log.Fatal("admin role failed:", err)
	}

	creators := make([]*domain.User, 0, 3)
	for i := 1; i <= 3; i++ {
		u, err := users.Upsert(ctx, fmt.Sprintf("user_creator_%d", i), fmt.Sprintf("creator%d@example.com", i))
		if err != nil {
			log.Fatal("creator upsert failed:", err)
		}
		creators = append(creators, u)
	}

	// ================== CAMPAIGNS ==================
	log.Println("Creating campaigns...")

	summer := domain.Campaign{
		Name:           "Summer Highlights",
		Description:    "Short-form highlights from the summer streams",
		RPMYouTube:     5,
		RPMTikTok:      3,
		RPMInstagram:   2.5,
		YouTubeEnabled: true,
		TikTokEnabled:  true,
		SOPText:        "Clips must be 20-60s, no watermark, credit the channel in the caption.",
	}
	db.Create(&summer)

	podcast := domain.Campaign{
		Name:           "Podcast Moments",
		Description:    "Best moments from the weekly podcast",
		RPMYouTube:     4,
		RPMX:           1.5,
		YouTubeEnabled: true,
		XEnabled:       true,
		SOPURL:         "https://docs.example.com/podcast-sop",
	}
	db.Create(&podcast)

	// ================== VERIFIED ACCOUNTS ==================
	log.Println("Creating verified accounts...")

	now := time.Now()
	accounts := make([]domain.VerifiedAccount, 0, len(creators))
	for i, u := range creators {
		a := domain.VerifiedAccount{
			UserID:           u.ProviderID,
			Platform:         domain.PlatformYouTube,
			Username:         fmt.Sprintf("creator_%d", i+1),
			VerificationCode: fmt.Sprintf("CLIP-1000%d", i),
			IsVerified:       true,
			VerifiedAt:       &now,
		}
		db.Create(&a)
		accounts = append(accounts, a)
	}

	// ================== CLIPS ==================
	log.Println("Creating clips...")

	views := []int64{2000, 1500, 800}
	for i, u := range creators {
		clip := domain.Clip{
			UserID:            u.ProviderID,
			CampaignID:        summer.ID,
			VerifiedAccountID: accounts[i].ID,
			AccountUsername:   accounts[i].Username,
			Platform:          domain.PlatformYouTube,
			ClipURL:           fmt.Sprintf("https://youtube.com/watch?v=seed%d", i+1),
			Views:             views[i],
			Status:            domain.ClipPending,
		}
		db.Create(&clip)
	}

	// one already-approved clip with its ledger entry, so dashboards have data
	approved := domain.Clip{
		UserID:            creators[0].ProviderID,
		CampaignID:        summer.ID,
		VerifiedAccountID: accounts[0].ID,
		AccountUsername:   accounts[0].Username,
		Platform:          domain.PlatformYouTube,
		ClipURL:           "https://youtube.com/watch?v=seed_approved",
		Views:             3000,
		Status:            domain.ClipApproved,
		Earnings:          15,
	}
	db.Create(&approved)
	db.Create(&domain.Earning{
		ClipID:     approved.ID,
		UserID:     approved.UserID,
		CampaignID: approved.CampaignID,
		Platform:   approved.Platform,
		Amount:     approved.Earnings,
	})

	// ================== SESSION TOKENS ==================
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "change-me-session-secret"
	}
	j := jwtsvc.New(secret, 24*time.Hour)

	adminToken, _ := j.GenerateToken(admin.ProviderID)
	creatorToken, _ := j.GenerateToken(creators[0].ProviderID)

	log.Println("Seed completed!")
	log.Println("Admin token:   ", adminToken)
	log.Println("Creator token: ", creatorToken)
}
