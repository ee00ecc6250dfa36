package accounts

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"cliprewards/internal/domain"
)

// BioScraper fetches the public profile bio for a handle. Implementations
// must be safe for concurrent use.
type BioScraper interface {
	FetchBio(ctx context.Context, platform domain.Platform, username string) (string, error)
}

// scraper task per platform; each task wraps the profile scraper for one
// network and returns its items under a platform-specific bio key.
var scraperTasks = map[domain.Platform]string{
	domain.PlatformYouTube:   "youtube-channel-scraper",
	domain.PlatformTikTok:    "tiktok-profile-scraper",
	domain.PlatformInstagram: "instagram-profile-scraper",
	domain.PlatformX:         "twitter-profile-scraper",
}

// the networks disagree on what a bio is called
var bioKeys = []string{"biography", "description", "bio", "signature"}

type ApifyScraper struct {
	client *resty.Client
	token  string
}

func NewApifyScraper(baseURL, token string, timeout time.Duration) *ApifyScraper {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	return &ApifyScraper{client: client, token: token}
}

func (s *ApifyScraper) FetchBio(ctx context.Context, platform domain.Platform, username string) (string, error) {
	task, ok := scraperTasks[platform]
	if !ok {
		return "", fmt.Errorf("no scraper task for platform %s", platform)
	}

	var out struct {
		Items []map[string]any `json:"items"`
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("token", s.token).
		SetBody(map[string]any{"usernames": []string{username}}).
		SetResult(&out).
		Post("/actor-tasks/" + task + "/run-sync")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("scraper returned %s", resp.Status())
	}

	if len(out.Items) == 0 {
		return "", nil
	}
	for _, key := range bioKeys {
		if v, ok := out.Items[0][key].(string); ok && v != "" {
			return v, nil
		}
	}
	return "", nil
}
