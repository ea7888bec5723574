package content

import (
	"strings"
	"testing"
	"unicode"
)

func TestNaturalizeHintUsesMatchingPool(t *testing.T) {
	for _, p := range Pillars() {
		t.Run(p.Name, func(t *testing.T) {
			var pool []string
			for _, hp := range hintPools {
				if strings.Contains(strings.ToLower(p.Hint), hp.match) {
					pool = hp.phrases
				}
			}
			if pool == nil {
				t.Fatalf("no pool matches hint %q", p.Hint)
			}

			for seed := uint64(0); seed < 20; seed++ {
				got := NaturalizeHint(NewRand(seed), p.Hint, "Bakery", []string{"sourdough"})
				if !inPool(got, pool, "bakery", "sourdough") {
					t.Errorf("seed %d: %q not drawn from the %q pool", seed, got, p.Name)
				}
				if r := []rune(got)[0]; !unicode.IsUpper(r) {
					t.Errorf("seed %d: %q does not start with a capital", seed, got)
				}
			}
		})
	}
}

func TestNaturalizeHintFallback(t *testing.T) {
	got := NaturalizeHint(NewRand(7), "Something entirely different", "Coach", nil)
	if !inPool(got, fallbackPhrases, "coach", "coach") {
		t.Errorf("NaturalizeHint() = %q, want a fallback phrase", got)
	}
}

func TestNaturalizeHintDeterministicPerSeed(t *testing.T) {
	hint := PillarForDay(0).Hint
	a := NaturalizeHint(NewRand(42), hint, "Retail", []string{"denim"})
	b := NaturalizeHint(NewRand(42), hint, "Retail", []string{"denim"})
	if a != b {
		t.Errorf("same seed produced %q and %q", a, b)
	}
}

func TestFocusKeywordDropsHashPrefix(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		want     string
	}{
		{"plain", []string{"sourdough"}, "sourdough"},
		{"hash prefixed", []string{"#cupcakes"}, "cupcakes"},
		{"only hashes skipped", []string{"##", " #sourdough "}, "sourdough"},
		{"industry fallback", []string{"#"}, "bakery"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := focusKeyword("Bakery", tt.keywords); got != tt.want {
				t.Errorf("focusKeyword() = %q, want %q", got, tt.want)
			}
		})
	}
}

func inPool(got string, pool []string, industry, keyword string) bool {
	for _, p := range pool {
		if capitalize(fillPlaceholders(p, industry, keyword)) == got {
			return true
		}
	}
	return false
}
