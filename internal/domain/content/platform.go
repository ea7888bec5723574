package content

import "strings"

const (
	PlatformInstagram  = "instagram"
	PlatformFacebook   = "facebook"
	PlatformLinkedIn   = "linkedin"
	PlatformTikTok     = "tiktok"
	PlatformTwitter    = "twitter"
	PlatformShortVideo = "short_video"
)

const (
	defaultHashtagBudget = 8
	twitterBodyLimit     = 240
)

var hashtagBudgets = map[string]int{
	PlatformTwitter:   3,
	PlatformLinkedIn:  5,
	PlatformFacebook:  8,
	PlatformInstagram: 12,
}

var reelPlatforms = map[string]bool{
	PlatformInstagram:  true,
	PlatformTikTok:     true,
	PlatformShortVideo: true,
}

var platformHints = map[string]string{
	PlatformInstagram: "Keep it visual, 1–2 short paragraphs, 8–12 niche hashtags.",
	PlatformFacebook:  "Conversational tone, 2–3 short paragraphs. Invite replies.",
	PlatformLinkedIn:  "Value-forward, concise, 1–2 actionable insights, 3–6 hashtags.",
	PlatformTikTok:    "Hook in first sentence, keep lines punchy, suggest a shot list.",
	PlatformTwitter:   "Short & punchy. 1–2 tweets per post; avoid walls of text.",
}

func normalizePlatform(p string) string {
	return strings.ToLower(strings.TrimSpace(p))
}

// IsReelCapable reports whether posts for platform carry a reel plan.
func IsReelCapable(platform string) bool {
	return reelPlatforms[normalizePlatform(platform)]
}

// CountReelPlatforms counts the reel-capable entries of platforms.
func CountReelPlatforms(platforms []string) int {
	n := 0
	for _, p := range platforms {
		if IsReelCapable(p) {
			n++
		}
	}
	return n
}

// HashtagBudget is the maximum number of hashtags kept on a caption for platform.
func HashtagBudget(platform string) int {
	if n, ok := hashtagBudgets[normalizePlatform(platform)]; ok {
		return n
	}
	return defaultHashtagBudget
}

func PlatformHint(platform string) string {
	if h, ok := platformHints[normalizePlatform(platform)]; ok {
		return h
	}
	return "Make it concise and useful."
}
