package content

import "strings"

type Tone string

const (
	ToneFriendly      Tone = "friendly"
	ToneProfessional  Tone = "professional"
	TonePlayful       Tone = "playful"
	ToneInspirational Tone = "inspirational"
	// ToneGeneric covers any tone outside the known set.
	ToneGeneric Tone = "generic"
)

var toneBlurbs = map[Tone]string{
	ToneFriendly:      "Warm, encouraging, and conversational.",
	ToneProfessional:  "Clear, confident, and value-focused.",
	TonePlayful:       "Upbeat, witty, and a bit cheeky.",
	ToneInspirational: "Uplifting, thoughtful, and mission-driven.",
	ToneGeneric:       "Conversational and helpful.",
}

// ParseTone folds free text onto a known tone, falling back to ToneGeneric.
func ParseTone(s string) Tone {
	t := Tone(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := toneBlurbs[t]; ok {
		return t
	}
	return ToneGeneric
}

func (t Tone) Blurb() string {
	if b, ok := toneBlurbs[t]; ok {
		return b
	}
	return toneBlurbs[ToneGeneric]
}
