package review

import (
	"math/rand/v2"
	"strings"
)

type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneGrateful     Tone = "grateful"
	ToneApologetic   Tone = "apologetic"
	ToneFriendly     Tone = "friendly"
)

// ParseTone defaults unknown tones to professional.
func ParseTone(s string) Tone {
	switch t := Tone(strings.ToLower(strings.TrimSpace(s))); t {
	case ToneProfessional, ToneGrateful, ToneApologetic, ToneFriendly:
		return t
	}
	return ToneProfessional
}

var openings = map[Tone]map[Sentiment][]string{
	ToneProfessional: {
		SentimentPositive: {"Thank you for your kind review{name}.", "We appreciate you taking the time to share your feedback{name}."},
		SentimentNeutral:  {"Thank you for your feedback{name}.", "We appreciate you sharing your experience{name}."},
		SentimentNegative: {"We're sorry to hear about your experience{name}.", "We apologize that we fell short of your expectations{name}."},
	},
	ToneGrateful: {
		SentimentPositive: {"Wow, thank you so much{name}! Reviews like yours truly make our day.", "We're so grateful for your wonderful words{name}!"},
		SentimentNeutral:  {"Thank you so much for stopping by and sharing your thoughts{name}.", "We're grateful you took a moment to leave us a review{name}."},
		SentimentNegative: {"Thank you for telling us{name}, and we're truly sorry we let you down.", "We're grateful for your honesty{name}, and sorry this visit wasn't what it should have been."},
	},
	ToneApologetic: {
		SentimentPositive: {"Thank you{name}! We're glad you enjoyed it, and sorry for anything that could have been even better.", "Thanks so much{name}! We're always working to make every visit perfect."},
		SentimentNeutral:  {"Thank you for the feedback{name}, and we apologize if anything fell short.", "We're sorry your experience wasn't more memorable{name}."},
		SentimentNegative: {"We're so sorry{name}. This is not the experience we want anyone to have.", "Please accept our sincere apologies{name}. You deserved much better."},
	},
	ToneFriendly: {
		SentimentPositive: {"Yay, thanks so much{name}! 😊", "You just made our whole team smile{name}! Thank you!"},
		SentimentNeutral:  {"Hey{name}, thanks for the review!", "Thanks for swinging by{name}!"},
		SentimentNegative: {"Oh no{name}, we're really sorry to hear this.", "Ugh, we're so sorry{name}. That's not okay with us."},
	},
}

var followUps = map[Sentiment][]string{
	SentimentPositive: {"We can't wait to see you again soon.", "It means a lot to our team."},
	SentimentNeutral:  {"We'd love to hear what would make your next visit even better.", "Your input helps us keep improving."},
	SentimentNegative: {"Please reach out to us directly so we can make this right.", "We'd appreciate the chance to fix this. Please contact us directly."},
}

// ResponseInput is what the responder needs to draft a reply.
type ResponseInput struct {
	ReviewText   string
	ReviewerName string
	Tone         Tone
	CompanyName  string
}

type Response struct {
	Text      string
	Sentiment Sentiment
}

// Compose drafts a reply from templates. The company name, when given, is
// always part of the sign-off.
func Compose(rng *rand.Rand, in ResponseInput) Response {
	sentiment := DetectSentiment(in.ReviewText)
	tone := ParseTone(string(in.Tone))

	name := ""
	if n := strings.TrimSpace(in.ReviewerName); n != "" {
		name = ", " + n
	}

	var b strings.Builder
	b.WriteString(strings.ReplaceAll(pickOne(rng, openings[tone][sentiment]), "{name}", name))
	b.WriteString(" ")
	b.WriteString(pickOne(rng, followUps[sentiment]))
	if company := strings.TrimSpace(in.CompanyName); company != "" {
		b.WriteString("\n\n- The team at ")
		b.WriteString(company)
	}
	return Response{Text: b.String(), Sentiment: sentiment}
}

func pickOne(rng *rand.Rand, options []string) string {
	return options[rng.IntN(len(options))]
}
