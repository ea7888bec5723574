package content

import (
	"strings"
	"unicode"
)

const (
	maxHashtags      = 12
	maxHashtagLength = 18
)

var baseHashtags = []string{"#SmallBusiness", "#LocalBiz", "#BehindTheScenes", "#Tips"}

// BuildHashtags derives the hashtag set for a profile. The industry tag comes
// first, then the fixed base tags, then one tag per keyword. Tags are compared
// case-insensitively and the first spelling wins.
func BuildHashtags(industry string, keywords []string) []string {
	candidates := make([]string, 0, 1+len(baseHashtags)+len(keywords))
	if tag := hashtagFor(industry); tag != "" {
		candidates = append(candidates, tag)
	}
	candidates = append(candidates, baseHashtags...)
	for _, kw := range keywords {
		if tag := hashtagFor(kw); tag != "" {
			candidates = append(candidates, tag)
		}
	}

	seen := make(map[string]bool, len(candidates))
	tags := make([]string, 0, maxHashtags)
	for _, tag := range candidates {
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		tags = append(tags, tag)
		if len(tags) == maxHashtags {
			break
		}
	}
	return tags
}

// hashtagFor strips whitespace and any leading '#' from s and truncates the
// remainder. It returns "" when nothing is left.
func hashtagFor(s string) string {
	token := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	token = strings.TrimLeft(token, "#")
	if token == "" {
		return ""
	}
	if r := []rune(token); len(r) > maxHashtagLength {
		token = string(r[:maxHashtagLength])
	}
	return "#" + token
}

// limitHashtags keeps at most n tags.
func limitHashtags(tags []string, n int) []string {
	if len(tags) <= n {
		return tags
	}
	return tags[:n]
}
