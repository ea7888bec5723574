// Package review drafts public replies to customer reviews.
package review

import (
	"strings"
	"unicode"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

var positiveWords = map[string]int{
	"great": 2, "amazing": 3, "excellent": 3, "love": 3, "loved": 3, "awesome": 3,
	"fantastic": 3, "wonderful": 3, "best": 2, "friendly": 1, "helpful": 2,
	"recommend": 2, "professional": 1, "perfect": 3, "nice": 1, "good": 1,
	"happy": 2, "thank": 1, "thanks": 1, "delicious": 2,
}

var negativeWords = map[string]int{
	"terrible": 3, "awful": 3, "worst": 3, "bad": 2, "poor": 2, "rude": 3,
	"disappointed": 3, "disappointing": 3, "horrible": 3, "never": 1, "slow": 1,
	"cold": 1, "dirty": 2, "overpriced": 2, "waste": 2, "broken": 2, "refund": 2,
	"unprofessional": 3, "angry": 2, "late": 1,
}

// negators flip the next scored word
var negators = map[string]bool{"not": true, "no": true, "isn't": true, "wasn't": true, "didn't": true, "don't": true}

// DetectSentiment scores review text with a small word list. Scores within
// one point of zero count as neutral.
func DetectSentiment(text string) Sentiment {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})

	score := 0
	negate := false
	for _, w := range words {
		if negators[w] {
			negate = true
			continue
		}
		delta := positiveWords[w] - negativeWords[w]
		if delta == 0 {
			continue
		}
		if negate {
			delta = -delta
			negate = false
		}
		score += delta
	}

	switch {
	case score >= 2:
		return SentimentPositive
	case score <= -2:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
