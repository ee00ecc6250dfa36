package campaigns

type CampaignRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`

	RPMYouTube   float64 `json:"rpm_youtube" validate:"min=0"`
	RPMTikTok    float64 `json:"rpm_tiktok" validate:"min=0"`
	RPMInstagram float64 `json:"rpm_instagram" validate:"min=0"`
	RPMX         float64 `json:"rpm_x" validate:"min=0"`

	YouTubeEnabled   bool `json:"youtube_enabled"`
	TikTokEnabled    bool `json:"tiktok_enabled"`
	InstagramEnabled bool `json:"instagram_enabled"`
	XEnabled         bool `json:"x_enabled"`

	SOPText string `json:"sop_text"`
	SOPURL  string `json:"sop_url" validate:"omitempty,url"`
}
