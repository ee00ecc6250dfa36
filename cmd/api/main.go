package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"cliprewards/internal/config"
	"cliprewards/internal/database"
	"cliprewards/internal/middleware"
	"cliprewards/internal/modules/accounts"
	"cliprewards/internal/modules/campaigns"
	"cliprewards/internal/modules/clips"
	"cliprewards/internal/modules/earnings"
	"cliprewards/internal/modules/events"
	"cliprewards/internal/modules/payouts"
	"cliprewards/internal/modules/users"
	"cliprewards/internal/modules/webhook"
	jwtsvc "cliprewards/internal/pkg/jwt"
	"cliprewards/internal/pkg/response"
	"cliprewards/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	verificationRepo := repository.NewVerificationRepository(db)
	payoutRepo := repository.NewPayoutRepository(db)

	j := jwtsvc.New(cfg.SessionSecret, cfg.SessionTTL)

	hub := events.NewHub()
	defer hub.Close()
	eventsHandler := events.NewHandler(hub)

	scraper := accounts.NewApifyScraper(cfg.ScraperBaseURL, cfg.ScraperToken, cfg.ScraperTimeout)
	accountsHandler := accounts.NewHandler(accounts.NewService(verificationRepo, scraper))

	clipsHandler := clips.NewHandler(clips.NewService(db, hub))
	campaignsHandler := campaigns.NewHandler(campaigns.NewService(campaignRepo))
	earningsHandler := earnings.NewHandler(earnings.NewService(db))
	payoutsHandler := payouts.NewHandler(payouts.NewService(payoutRepo))
	usersHandler := users.NewHandler(users.NewService(userRepo))

	webhookHandler, err := webhook.NewHandler(cfg.WebhookSecret, userRepo)
	if err != nil {
		log.Fatal(err)
	}

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger())

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", func(c *gin.Context) {
		response.Success(c, 200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		// signed by the identity provider, not by a session
		webhookHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.RequireAuth(j, userRepo))
		{
			clipsHandler.RegisterRoutes(protected)
			campaignsHandler.RegisterRoutes(protected)
			accountsHandler.RegisterRoutes(protected)
			earningsHandler.RegisterRoutes(protected)
			payoutsHandler.RegisterRoutes(protected)

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				clipsHandler.RegisterAdminRoutes(admin)
				campaignsHandler.RegisterAdminRoutes(admin)
				earningsHandler.RegisterAdminRoutes(admin)
				payoutsHandler.RegisterAdminRoutes(admin)
				usersHandler.RegisterAdminRoutes(admin)
				eventsHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
