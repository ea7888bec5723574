package content

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"
)

// TextEnhancer rewrites a finished caption, usually through a hosted language model.
type TextEnhancer interface {
	Enhance(ctx context.Context, text string, ec EnhanceContext) (string, error)
}

// EnhanceContext tells the enhancer what the rewrite must preserve.
type EnhanceContext struct {
	Platform     string
	PlatformHint string
	Tone         Tone
	ToneBlurb    string
	Hashtags     []string
	Industry     string
}

type CaptionInput struct {
	Industry      string
	Tone          Tone
	Pillar        Pillar
	Platform      string
	BrandKeywords []string
	Hashtags      []string
	Goals         []string
	Company       string
}

// Caption is a composed caption. Draft is always the locally built text; Text
// differs from it only when Enhanced is true.
type Caption struct {
	Text           string
	Draft          string
	Enhanced       bool
	FallbackReason string
}

// Reasons an enhanced caption was discarded.
const (
	FallbackDisabled        = "disabled"
	FallbackError           = "error"
	FallbackEmpty           = "empty"
	FallbackTooShort        = "too_short"
	FallbackTooLong         = "too_long"
	FallbackMissingHashtags = "missing_hashtags"
	FallbackPlatformLimit   = "platform_limit"
)

// Enhanced output must stay within these bounds relative to the draft, in percent.
const (
	minEnhancedPercent = 40
	maxEnhancedPercent = 120
)

var bodyTemplates = map[string]map[Tone][]string{
	PillarEducational: {
		ToneFriendly:      {"{hint} 💡\n\nIt's one of the most common questions we get in {industry}, so we're sharing it here.", "Tip time! {hint}.\n\nTry it this week and let us know how it goes."},
		ToneProfessional:  {"{hint}.\n\nA practical insight from our work in {industry}.", "Insight of the week: {hint}.\n\nSmall adjustments like this compound over time."},
		TonePlayful:       {"Psst... {hint} 🤫\n\nYou're welcome.", "Hot tip incoming 🔥 {hint}.\n\nThank us later."},
		ToneInspirational: {"{hint}.\n\nGrowth starts with one small, intentional step.", "Knowledge is meant to be shared. {hint}."},
	},
	PillarBehindTheScenes: {
		ToneFriendly:      {"{hint} 👀\n\nWe love showing you the real side of what we do.", "Come on in! {hint}."},
		ToneProfessional:  {"{hint}.\n\nQuality in {industry} comes from a process we take seriously.", "Behind the work: {hint}."},
		TonePlayful:       {"{hint} 🎬\n\nSpoiler: there's a lot of coffee involved.", "Caught in the act! {hint}."},
		ToneInspirational: {"{hint}.\n\nEvery detail you don't see is where the magic happens.", "The heart of our work: {hint}."},
	},
	PillarTestimonial: {
		ToneFriendly:      {"{hint} 🥰\n\nMoments like this are why we do what we do.", "Happy dance! {hint}."},
		ToneProfessional:  {"{hint}.\n\nResults speak for themselves.", "Client spotlight: {hint}."},
		TonePlayful:       {"{hint} 😎\n\nNot to brag, but... okay, we're bragging.", "Excuse us while we frame this. {hint}."},
		ToneInspirational: {"{hint}.\n\nHelping people reach their goals is the best part of our day.", "Stories like this keep us going. {hint}."},
	},
	PillarProductOffer: {
		ToneFriendly:      {"{hint} ✨\n\nMade with care for people just like you.", "New favorite alert! {hint}."},
		ToneProfessional:  {"{hint}.\n\nDesigned to deliver real value in {industry}.", "Featured offering: {hint}."},
		TonePlayful:       {"{hint} 🛒\n\nYour cart has been waiting for this.", "Warning: may cause extreme satisfaction. {hint}."},
		ToneInspirational: {"{hint}.\n\nBuilt to help you do more of what matters.", "Made for your next chapter. {hint}."},
	},
	PillarEngagement: {
		ToneFriendly:      {"{hint} 🤔\n\nWe'd love to hear from you!", "Let's chat! {hint}."},
		ToneProfessional:  {"{hint}.\n\nWe're gathering perspectives from the {industry} community.", "Open question: {hint}."},
		TonePlayful:       {"{hint} 🗳️\n\nNo pressure. (Okay, a little pressure.)", "Debate time! {hint}."},
		ToneInspirational: {"{hint}.\n\nEvery voice adds something to this community.", "Let's learn from each other. {hint}."},
	},
	PillarStory: {
		ToneFriendly:      {"{hint} 📖\n\nGrab a coffee, this one's worth it.", "Story time! {hint}."},
		ToneProfessional:  {"{hint}.\n\nChallenge, approach, outcome.", "Case in point: {hint}."},
		TonePlayful:       {"{hint} 🍿\n\nYou won't believe how this ends.", "Gather round, friends. {hint}."},
		ToneInspirational: {"{hint}.\n\nEvery setback holds the start of a comeback.", "This is why we never give up. {hint}."},
	},
}

// Hints that end in their own punctuation must not pick up a template period.
var doublePunct = strings.NewReplacer("?.", "?", "!.", "!")

var playfulSignEmojis = []string{"✨", "🎉", "😎", "🙌"}

type CaptionComposer struct {
	rng            *rand.Rand
	enhancer       TextEnhancer
	enhanceTimeout time.Duration
}

// NewCaptionComposer builds a composer. enhancer may be nil; a zero
// enhanceTimeout leaves the deadline to the caller's context.
func NewCaptionComposer(rng *rand.Rand, enhancer TextEnhancer, enhanceTimeout time.Duration) *CaptionComposer {
	return &CaptionComposer{rng: rng, enhancer: enhancer, enhanceTimeout: enhanceTimeout}
}

// Compose builds the caption draft and, when an enhancer is set, tries to
// improve it. Any problem with the enhanced text returns the draft unchanged.
func (c *CaptionComposer) Compose(ctx context.Context, in CaptionInput) Caption {
	draft, tagLine := c.draft(in)
	result := Caption{Text: draft, Draft: draft}
	if c.enhancer == nil {
		result.FallbackReason = FallbackDisabled
		return result
	}

	if c.enhanceTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.enhanceTimeout)
		defer cancel()
	}

	out, err := c.enhancer.Enhance(ctx, draft, EnhanceContext{
		Platform:     normalizePlatform(in.Platform),
		PlatformHint: PlatformHint(in.Platform),
		Tone:         in.Tone,
		ToneBlurb:    in.Tone.Blurb(),
		Hashtags:     limitHashtags(in.Hashtags, HashtagBudget(in.Platform)),
		Industry:     in.Industry,
	})
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		result.FallbackReason = FallbackError
		return result
	}

	out = strings.TrimSpace(out)
	if reason := rejectEnhanced(draft, out, tagLine, in.Platform); reason != "" {
		result.FallbackReason = reason
		return result
	}
	result.Text = out
	result.Enhanced = true
	return result
}

// draft returns the caption and the hashtag line appended to it.
func (c *CaptionComposer) draft(in CaptionInput) (string, string) {
	hint := NaturalizeHint(c.rng, in.Pillar.Hint, in.Industry, in.BrandKeywords)

	opening := strings.NewReplacer(
		"{hint}", strings.TrimRight(hint, "."),
		"{industry}", strings.ToLower(in.Industry),
	).Replace(c.bodyTemplate(in.Pillar.Name, in.Tone))

	var b strings.Builder
	b.WriteString(doublePunct.Replace(opening))
	b.WriteString("\n\n")
	b.WriteString(SelectCTA(c.rng, in.Pillar.Name, in.Tone, in.Platform))
	if sig := c.signature(in.Tone, in.Company); sig != "" {
		b.WriteString("\n")
		b.WriteString(sig)
	}

	body := b.String()
	if normalizePlatform(in.Platform) == PlatformTwitter {
		body = truncateRunes(body, twitterBodyLimit)
	}

	tags := limitHashtags(in.Hashtags, HashtagBudget(in.Platform))
	if len(tags) == 0 {
		return body, ""
	}
	tagLine := strings.Join(tags, " ")
	return body + "\n\n" + tagLine, tagLine
}

func (c *CaptionComposer) bodyTemplate(pillar string, tone Tone) string {
	byTone, ok := bodyTemplates[pillar]
	if !ok {
		return "{hint}."
	}
	options, ok := byTone[tone]
	if !ok {
		options = byTone[ToneFriendly]
	}
	return pick(c.rng, options)
}

// signature is the company sign-off line. It is left out at random so the
// calendar does not repeat the brand name on every post.
func (c *CaptionComposer) signature(tone Tone, company string) string {
	company = strings.TrimSpace(company)
	if company == "" {
		return ""
	}
	switch tone {
	case ToneProfessional:
		if c.rng.IntN(2) == 0 {
			return ""
		}
		return "- " + company
	case TonePlayful:
		if c.rng.IntN(2) == 0 {
			return ""
		}
		if c.rng.IntN(2) == 0 {
			return company
		}
		return pick(c.rng, playfulSignEmojis) + " " + company
	default:
		if c.rng.IntN(5) < 2 {
			return ""
		}
		return "❤️ " + company
	}
}

func rejectEnhanced(draft, out, tagLine, platform string) string {
	if out == "" {
		return FallbackEmpty
	}
	draftLen := utf8.RuneCountInString(draft)
	outLen := utf8.RuneCountInString(out)
	if outLen*100 < draftLen*minEnhancedPercent {
		return FallbackTooShort
	}
	if outLen*100 > draftLen*maxEnhancedPercent {
		return FallbackTooLong
	}
	if tagLine != "" && !strings.HasSuffix(out, tagLine) {
		return FallbackMissingHashtags
	}
	if normalizePlatform(platform) == PlatformTwitter {
		body := strings.TrimSpace(strings.TrimSuffix(out, tagLine))
		if utf8.RuneCountInString(body) > twitterBodyLimit {
			return FallbackPlatformLimit
		}
	}
	return ""
}

// truncateRunes cuts s to at most limit runes, ending in an ellipsis when cut.
func truncateRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return strings.TrimSpace(string(r[:limit-1])) + "…"
}

// RejectEnhancedText applies the length bounds used for captions to any other
// enhanced text. It returns "" when out may replace draft.
func RejectEnhancedText(draft, out string) string {
	return rejectEnhanced(draft, strings.TrimSpace(out), "", "")
}
