package content

import (
	"fmt"
	"net/url"
	"strings"
)

const imageSearchBase = "https://source.unsplash.com/featured/?"

func ImagePrompt(industry, pillar string, brandKeywords []string) string {
	style := "on-brand colors"
	if kws := nonBlank(brandKeywords); len(kws) > 0 {
		style = strings.Join(kws, ", ")
	}
	return fmt.Sprintf("High-quality photo for social post. Industry: %s. Content pillar: %s. Style: natural light, minimal background, %s.",
		industry, pillar, style)
}

// ImageURL is a stock-photo search link for the industry and pillar.
func ImageURL(industry, pillar string) string {
	return imageSearchBase + url.QueryEscape(industry+" "+pillar)
}

func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
