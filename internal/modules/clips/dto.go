package clips

import "github.com/google/uuid"

type SubmitClipRequest struct {
	CampaignID        uuid.UUID `json:"campaign_id" validate:"required"`
	VerifiedAccountID uuid.UUID `json:"verified_account_id" validate:"required"`
	ClipURL           string    `json:"clip_url" validate:"required,url"`
}

type UpdateViewsRequest struct {
	Views int64 `json:"views" validate:"min=0"`
}

type ClipListFilter struct {
	Status string `form:"status"`
}
