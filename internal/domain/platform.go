package domain

import "strings"

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
	PlatformX         Platform = "x"
	PlatformUnknown   Platform = "unknown"
)

// Platforms lists every platform clips can be submitted on, in detection
// priority order.
var Platforms = []Platform{PlatformInstagram, PlatformTikTok, PlatformYouTube, PlatformX}

// DetectPlatform guesses the platform from a clip URL. It is a best-effort
// substring heuristic, not a URL parser: first match wins, anything
// unrecognized falls through to PlatformUnknown.
func DetectPlatform(rawURL string) Platform {
	lower := strings.ToLower(rawURL)

	switch {
	case strings.Contains(lower, "instagram"):
		return PlatformInstagram
	case strings.Contains(lower, "tiktok"):
		return PlatformTikTok
	case strings.Contains(lower, "youtube"), strings.Contains(lower, "youtu.be"):
		return PlatformYouTube
	case strings.Contains(lower, "twitter"), strings.Contains(lower, "x.com"):
		return PlatformX
	default:
		return PlatformUnknown
	}
}

// ParsePlatform validates a client-supplied platform value.
func ParsePlatform(s string) (Platform, bool) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Platforms {
		if p == known {
			return p, true
		}
	}
	return PlatformUnknown, false
}
