package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Campaign defines what a brand pays per 1000 views on each platform.
// RPM edits apply to future approvals only; amounts already written to the
// earnings ledger are never recomputed.
type Campaign struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`

	RPMYouTube   float64 `json:"rpm_youtube" gorm:"column:rpm_youtube;not null;default:0"`
	RPMTikTok    float64 `json:"rpm_tiktok" gorm:"column:rpm_tiktok;not null;default:0"`
	RPMInstagram float64 `json:"rpm_instagram" gorm:"column:rpm_instagram;not null;default:0"`
	RPMX         float64 `json:"rpm_x" gorm:"column:rpm_x;not null;default:0"`

	YouTubeEnabled   bool `json:"youtube_enabled" gorm:"column:youtube_enabled;not null;default:false"`
	TikTokEnabled    bool `json:"tiktok_enabled" gorm:"column:tiktok_enabled;not null;default:false"`
	InstagramEnabled bool `json:"instagram_enabled" gorm:"column:instagram_enabled;not null;default:false"`
	XEnabled         bool `json:"x_enabled" gorm:"column:x_enabled;not null;default:false"`

	SOPText string `json:"sop_text" gorm:"column:sop_text"`
	SOPURL  string `json:"sop_url" gorm:"column:sop_url"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Campaign) TableName() string { return "campaigns" }

func (c *Campaign) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// RPMFor returns the campaign rate for a platform. ok is false when the
// platform is not part of the RPM table; a configured rate of 0 is still a
// valid rate.
func (c *Campaign) RPMFor(p Platform) (rpm float64, ok bool) {
	switch p {
	case PlatformYouTube:
		return c.RPMYouTube, true
	case PlatformTikTok:
		return c.RPMTikTok, true
	case PlatformInstagram:
		return c.RPMInstagram, true
	case PlatformX:
		return c.RPMX, true
	default:
		return 0, false
	}
}

// PlatformEnabled reports whether clips on the platform may be submitted to
// this campaign.
func (c *Campaign) PlatformEnabled(p Platform) bool {
	switch p {
	case PlatformYouTube:
		return c.YouTubeEnabled
	case PlatformTikTok:
		return c.TikTokEnabled
	case PlatformInstagram:
		return c.InstagramEnabled
	case PlatformX:
		return c.XEnabled
	default:
		return false
	}
}
