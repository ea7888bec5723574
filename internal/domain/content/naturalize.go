package content

import (
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"
)

type hintPool struct {
	match   string
	phrases []string
}

// Pools are keyed by a fragment of the pillar hint text, not the pillar name.
var hintPools = []hintPool{
	{"quick tip", []string{
		"here's a quick {industry} tip we wish more people knew",
		"one small change that makes a big difference with {keyword}",
		"a simple fix for a problem we hear about all the time",
		"save this one: an easy win for anyone dealing with {keyword}",
	}},
	{"candid look", []string{
		"a peek behind the curtain at how we really work",
		"no filters today, just a real look at our {industry} day",
		"meet the people and the process behind every {keyword}",
		"this is what a normal Tuesday looks like around here",
	}},
	{"customer quote", []string{
		"our customers said it better than we ever could",
		"a little love from someone we were lucky to help",
		"real words from a real customer about {keyword}",
		"this note from a client made our whole week",
	}},
	{"one offering", []string{
		"let's talk about one thing we're really proud of",
		"if {keyword} is on your list, this one's for you",
		"a closer look at one of our favorite {industry} offers",
		"here's exactly what you get, and why people love it",
	}},
	{"ask a question", []string{
		"quick question for you, and we really want to know",
		"settle this for us in the comments",
		"we're curious: how do you handle {keyword}?",
		"vote below, we'll share the results later this week",
	}},
	{"brief story", []string{
		"a short story about a challenge, what we did, and how it turned out",
		"this didn't go to plan at first, here's what happened",
		"from stuck to sorted: a quick {industry} story",
		"the story behind one of our favorite {keyword} moments",
	}},
}

var fallbackPhrases = []string{
	"here's something worth sharing today",
	"a quick thought from our {industry} team",
	"something we've been thinking about lately",
}

// NaturalizeHint rewrites a fixed pillar hint into a conversational line.
func NaturalizeHint(rng *rand.Rand, hint, industry string, brandKeywords []string) string {
	phrases := fallbackPhrases
	lower := strings.ToLower(hint)
	for _, pool := range hintPools {
		if strings.Contains(lower, pool.match) {
			phrases = pool.phrases
			break
		}
	}
	return capitalize(fillPlaceholders(pick(rng, phrases), industry, focusKeyword(industry, brandKeywords)))
}

func fillPlaceholders(tmpl, industry, keyword string) string {
	return strings.NewReplacer(
		"{industry}", strings.ToLower(industry),
		"{keyword}", keyword,
	).Replace(tmpl)
}

// focusKeyword is the first non-blank keyword, or the industry when there is none.
// Leading '#' is dropped so a keyword never reads as an extra hashtag in the body.
func focusKeyword(industry string, keywords ...[]string) string {
	for _, list := range keywords {
		for _, kw := range list {
			if kw = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(kw), "#")); kw != "" {
				return kw
			}
		}
	}
	return strings.ToLower(industry)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func pick(rng *rand.Rand, options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[rng.IntN(len(options))]
}
