package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultHTTPAddr       = ":8080"
	defaultSessionTTL     = "24h"
	defaultSessionSecret  = "change-me-session-secret"
	defaultWebhookSecret  = ""
	defaultScraperBaseURL = "https://api.apify.com/v2"
	defaultScraperTimeout = "20s"
)

// RuntimeConfig is everything the API binary reads from the environment.
type RuntimeConfig struct {
	AppEnv         string
	HTTPAddr       string
	DatabaseURL    string
	SessionSecret  string
	SessionTTL     time.Duration
	WebhookSecret  string
	ScraperBaseURL string
	ScraperToken   string
	ScraperTimeout time.Duration
	CORSOrigins    []string
}

func Load() (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", "clips.db"))
	cfg.SessionSecret = strings.TrimSpace(getEnv("SESSION_SECRET", defaultSessionSecret))
	cfg.WebhookSecret = strings.TrimSpace(getEnv("IDENTITY_WEBHOOK_SECRET", defaultWebhookSecret))
	cfg.ScraperBaseURL = strings.TrimSpace(getEnv("SCRAPER_BASE_URL", defaultScraperBaseURL))
	cfg.ScraperToken = strings.TrimSpace(os.Getenv("SCRAPER_TOKEN"))

	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	var err error
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}
	cfg.ScraperTimeout, err = parseDurationEnv("SCRAPER_TIMEOUT", defaultScraperTimeout)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateConfig(cfg *RuntimeConfig) error {
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if cfg.ScraperTimeout <= 0 {
		return fmt.Errorf("SCRAPER_TIMEOUT must be > 0")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.SessionSecret, defaultSessionSecret) {
			return fmt.Errorf("in prod/release SESSION_SECRET must be set and not default")
		}
		if cfg.WebhookSecret == "" {
			return fmt.Errorf("in prod/release IDENTITY_WEBHOOK_SECRET must be set")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
