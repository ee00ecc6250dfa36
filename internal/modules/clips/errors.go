package clips

import "errors"

var (
	ErrClipNotFound       = errors.New("clip not found")
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrAccountNotFound    = errors.New("verified account not found")
	ErrAccountNotVerified = errors.New("account is not verified")
	ErrPlatformUnknown    = errors.New("could not detect platform from url")
	ErrPlatformDisabled   = errors.New("platform is not enabled for this campaign")
	ErrPlatformMismatch   = errors.New("clip url platform does not match the account platform")
	ErrRPMNotConfigured   = errors.New("campaign has no rate for this platform")
	ErrAlreadyResolved    = errors.New("clip is already approved or rejected")
)
