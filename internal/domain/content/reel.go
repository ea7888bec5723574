package content

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"
)

const (
	DefaultReelLength = 30
	minReelLength     = 15
	maxReelLength     = 90
	maxReelHashtags   = 5
)

const (
	TierSolo      = "solo"
	TierSmallTeam = "small_team"
	TierPro       = "pro"
)

type Beat struct {
	Label        string `json:"label" yaml:"label"`
	StartS       int    `json:"start_s" yaml:"start_s"`
	EndS         int    `json:"end_s" yaml:"end_s"`
	OnScreenText string `json:"on_screen_text" yaml:"on_screen_text"`
	Line         string `json:"line" yaml:"line"`
}

type ReelPlan struct {
	Style           string   `json:"style" yaml:"style"`
	Hook            string   `json:"hook" yaml:"hook"`
	RankedHooks     []string `json:"ranked_hooks" yaml:"ranked_hooks"`
	Beats           []Beat   `json:"beats" yaml:"beats"`
	ShotList        []string `json:"shot_list" yaml:"shot_list"`
	Hashtags        []string `json:"hashtags" yaml:"hashtags"`
	CTA             string   `json:"cta" yaml:"cta"`
	ThumbnailPrompt string   `json:"thumbnail_prompt" yaml:"thumbnail_prompt"`
	SRT             string   `json:"srt" yaml:"srt"`
	LengthSeconds   int      `json:"length_seconds" yaml:"length_seconds"`
	ProductionTier  string   `json:"production_tier" yaml:"production_tier"`
}

type ReelInput struct {
	Industry       string
	Pillar         Pillar
	BrandKeywords  []string
	NicheKeywords  []string
	Hashtags       []string
	Tone           Tone
	Company        string
	Style          string
	Goals          []string
	LengthSeconds  int
	ProductionTier string
}

type industryModifier struct {
	aliases       []string
	cta           string
	thumbnailHint string
	hookPrefix    string
	shotHints     []string
}

var industryModifiers = []industryModifier{
	{[]string{"realtor", "real_estate", "realestate"}, "DM 'TOUR' to book a private showing", "bright exterior shot with a SOLD-style banner", "New listing alert: ", []string{"Front-door walk-in", "Kitchen and living room pan", "Neighborhood street view"}},
	{[]string{"restaurant", "cafe", "bakery"}, "Book your table or order online today", "close-up of the signature dish with steam", "Hungry? ", []string{"Plating close-up", "Kitchen action shot", "Guests enjoying the meal"}},
	{[]string{"retail", "boutique", "shop"}, "Shop the look in store or online", "flat-lay of featured products on a clean background", "Just dropped: ", []string{"Shelf sweep", "Product in hand", "Checkout moment"}},
	{[]string{"fitness", "gym", "trainer"}, "Book your free trial session", "mid-workout action shot with bold text", "Try this today: ", []string{"Warm-up wide shot", "Form close-up", "Post-workout high five"}},
	{[]string{"artisan", "maker", "craft"}, "Order a custom piece via DM", "hands at work on a finished piece", "Made by hand: ", []string{"Raw materials", "Hands at work", "Finished piece reveal"}},
	{[]string{"coach", "consultant", "coaching"}, "Book a free discovery call", "confident portrait with a bold headline", "Real talk: ", []string{"Face-to-camera intro", "Whiteboard or notebook", "Client session (with permission)"}},
	{[]string{"nonprofit", "non_profit", "charity"}, "Donate or volunteer via the link in bio", "volunteers in action with warm tones", "Because of you: ", []string{"Volunteers at work", "Community faces", "Impact number on screen"}},
	{[]string{"home_services", "plumber", "electrician", "landscaping", "cleaning"}, "Call today for a free estimate", "before and after split frame", "Before you call anyone else: ", []string{"Before shot", "Work in progress", "After reveal"}},
	{[]string{"healthcare", "clinic", "dental", "wellness"}, "Book your appointment online", "calm clinic setting with friendly staff", "Health tip: ", []string{"Welcoming front desk", "Practitioner explaining", "Calm treatment room"}},
}

var defaultModifier = industryModifier{
	cta:           "Follow for more and send us a message",
	thumbnailHint: "clean, bold text overlay on a bright background",
	hookPrefix:    "",
	shotHints:     []string{"Establishing shot of the business"},
}

type reelStyle struct {
	key   string
	name  string
	hooks []string
	shots []string
}

const defaultStyleName = "Face-camera tips"

var reelStyles = []reelStyle{
	{"facecamera", defaultStyleName,
		[]string{"3 things nobody tells you about {keyword}", "Stop doing this with your {keyword}", "The {keyword} mistake I see every week"},
		[]string{"Face-to-camera medium shot", "Text overlay for each tip", "Quick cutaway B-roll"}},
	{"propertybroll", "Property b-roll + captions",
		[]string{"Walk through this {keyword} with me", "This {keyword} has one feature you won't believe", "Would you live here?"},
		[]string{"Slow gimbal walk-through", "Detail shots of finishes", "Drone or wide exterior"}},
	{"productbroll", "Product b-roll + captions",
		[]string{"Here's why everyone's asking about our {keyword}", "Watch this {keyword} come together", "POV: you finally found the perfect {keyword}"},
		[]string{"Product hero shot", "Texture macro shots", "Product in use"}},
	{"localhotspot", "Local hotspot montage",
		[]string{"Our favorite local spots this week", "If you're nearby, you have to try this", "Locals only: the best kept secret in town"},
		[]string{"Street-level establishing shot", "Quick cuts of local landmarks", "Owner greeting at the door"}},
	{"story", "Story / before-after",
		[]string{"This is how it started...", "Before vs. after: you have to see this", "We almost gave up on this {keyword}"},
		[]string{"Before shot", "Process timelapse", "After reveal with reaction"}},
	{"workout", "Workout montage",
		[]string{"Try this 30-second {keyword} challenge", "Your new favorite move", "Do this before every workout"},
		[]string{"Wide shot of full movement", "Slow-motion rep", "Sweaty finish and smile"}},
}

var tierShotNotes = map[string]string{
	TierSolo:      "Phone on a tripod, natural window light",
	TierSmallTeam: "Second camera for cutaways, clip-on mic",
	TierPro:       "Gimbal, lav mic, color grade to brand palette",
}

var tipLines = map[string]string{
	PillarEducational:     "Here's the fix: start with {keyword} and keep it simple.",
	PillarBehindTheScenes: "Here's how we actually do it, step by step.",
	PillarTestimonial:     "Here's what changed for them after working with us.",
	PillarProductOffer:    "Here's what makes our {keyword} different.",
	PillarEngagement:      "Here's the question: what would you choose?",
	PillarStory:           "Here's what we tried, and what finally worked.",
}

// beat boundaries as cumulative percent of total length
var beatSchedule = []struct {
	label string
	until int
}{
	{"Hook", 10},
	{"Problem", 30},
	{"Tip", 60},
	{"Example", 85},
	{"CTA", 100},
}

type ReelPlanner struct {
	rng *rand.Rand
}

func NewReelPlanner(rng *rand.Rand) *ReelPlanner {
	return &ReelPlanner{rng: rng}
}

func (p *ReelPlanner) Plan(in ReelInput) ReelPlan {
	mod := matchIndustry(in.Industry)
	style := matchStyle(in.Style)
	keyword := focusKeyword(in.Industry, in.NicheKeywords, in.BrandKeywords)
	length := clampLength(in.LengthSeconds)
	tier := normalizeTier(in.ProductionTier)

	hooks := make([]string, len(style.hooks))
	for i, h := range style.hooks {
		hooks[i] = mod.hookPrefix + fillPlaceholders(h, in.Industry, keyword)
	}
	ranked := rankHooks(hooks, p.rng.IntN(len(hooks)))

	lines := []string{
		ranked[0],
		problemLine(in.Industry, in.Goals),
		fillPlaceholders(tipLineFor(in.Pillar.Name), in.Industry, keyword),
		exampleLine(in.Company, in.Industry),
		mod.cta + ".",
	}
	beats := scheduleBeats(length, lines, mod.cta)

	return ReelPlan{
		Style:           style.name,
		Hook:            ranked[0],
		RankedHooks:     ranked,
		Beats:           beats,
		ShotList:        mergeShots(mod.shotHints, style.shots, tierShotNotes[tier]),
		Hashtags:        limitHashtags(in.Hashtags, maxReelHashtags),
		CTA:             mod.cta,
		ThumbnailPrompt: thumbnailPrompt(in.Industry, style.name, mod.thumbnailHint),
		SRT:             BuildSRT(beats),
		LengthSeconds:   length,
		ProductionTier:  tier,
	}
}

// rankHooks moves the chosen hook to the front and keeps the rest in table order.
func rankHooks(hooks []string, chosen int) []string {
	ranked := make([]string, 0, len(hooks))
	ranked = append(ranked, hooks[chosen])
	for i, h := range hooks {
		if i != chosen {
			ranked = append(ranked, h)
		}
	}
	return ranked
}

func scheduleBeats(length int, lines []string, cta string) []Beat {
	beats := make([]Beat, len(beatSchedule))
	start := 0
	for i, s := range beatSchedule {
		end := length * s.until / 100
		beats[i] = Beat{
			Label:  s.label,
			StartS: start,
			EndS:   end,
			Line:   lines[i],
		}
		start = end
	}
	beats[0].OnScreenText = firstWords(lines[0], 6)
	beats[1].OnScreenText = "The problem"
	beats[2].OnScreenText = "Try this"
	beats[3].OnScreenText = "Real example"
	beats[4].OnScreenText = cta
	return beats
}

func problemLine(industry string, goals []string) string {
	for _, g := range goals {
		if g = strings.TrimSpace(g); g != "" {
			return fmt.Sprintf("Most people get stuck when it comes to %s.", strings.ToLower(g))
		}
	}
	return fmt.Sprintf("Most %s customers run into the same problem.", strings.ToLower(industry))
}

func exampleLine(company, industry string) string {
	if company = strings.TrimSpace(company); company != "" {
		return fmt.Sprintf("At %s, this is exactly what we do every day.", company)
	}
	return fmt.Sprintf("Here's what that looks like in a real %s day.", strings.ToLower(industry))
}

func tipLineFor(pillar string) string {
	if l, ok := tipLines[pillar]; ok {
		return l
	}
	return "Here's the one thing to remember."
}

func thumbnailPrompt(industry, style, hint string) string {
	return fmt.Sprintf("Vertical 9:16 thumbnail for a %s reel (%s): %s. Bold 3-5 word headline, high contrast, face or product in focus.",
		industry, style, hint)
}

// BuildSRT renders beats as SubRip subtitles, one cue per beat.
func BuildSRT(beats []Beat) string {
	var b strings.Builder
	for i, beat := range beats {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n", i+1, srtTimestamp(beat.StartS), srtTimestamp(beat.EndS), beat.Line)
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func srtTimestamp(seconds int) string {
	return fmt.Sprintf("%02d:%02d:%02d,000", seconds/3600, seconds/60%60, seconds%60)
}

func matchIndustry(industry string) industryModifier {
	key := strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToLower(strings.TrimSpace(industry)))
	if key == "" {
		return defaultModifier
	}
	for _, m := range industryModifiers {
		for _, alias := range m.aliases {
			if strings.Contains(key, alias) {
				return m
			}
		}
	}
	return defaultModifier
}

func matchStyle(style string) reelStyle {
	key := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, style)
	if key != "" {
		for _, s := range reelStyles {
			if strings.HasPrefix(key, s.key) {
				return s
			}
		}
	}
	return reelStyles[0]
}

func clampLength(n int) int {
	switch {
	case n <= 0:
		return DefaultReelLength
	case n < minReelLength:
		return minReelLength
	case n > maxReelLength:
		return maxReelLength
	}
	return n
}

func normalizeTier(tier string) string {
	t := strings.ToLower(strings.TrimSpace(tier))
	if _, ok := tierShotNotes[t]; ok {
		return t
	}
	return TierSolo
}

// mergeShots lists industry shots first, then style shots, then the tier note.
func mergeShots(industryShots, styleShots []string, tierNote string) []string {
	all := make([]string, 0, len(industryShots)+len(styleShots)+1)
	all = append(all, industryShots...)
	all = append(all, styleShots...)
	all = append(all, tierNote)

	out := make([]string, 0, len(all))
	seen := make(map[string]bool, len(all))
	for _, s := range all {
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

func firstWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) <= n {
		return s
	}
	return strings.Join(words[:n], " ") + "…"
}
