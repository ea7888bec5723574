package content

import (
	"context"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultDays     = 30
	DefaultIndustry = "Business"
	DateLayout      = "2006-01-02"
)

// Keys read from Request.Details.
const (
	DetailReelStyle      = "reel_style"
	DetailReelLength     = "reel_length_seconds"
	DetailProductionTier = "production_tier"
)

type Request struct {
	Days          int
	StartDate     time.Time
	Industry      string
	Tone          string
	Platforms     []string
	BrandKeywords []string
	NicheKeywords []string
	Goals         []string
	IncludeImages bool
	Company       string
	Details       map[string]any
}

type Post struct {
	Date        string    `json:"date" yaml:"date"`
	DayIndex    int       `json:"day_index" yaml:"day_index"`
	Platform    string    `json:"platform" yaml:"platform"`
	Pillar      string    `json:"pillar" yaml:"pillar"`
	Caption     string    `json:"caption" yaml:"caption"`
	ImagePrompt string    `json:"image_prompt" yaml:"image_prompt"`
	ImageURL    *string   `json:"image_url" yaml:"image_url,omitempty"`
	Reel        *ReelPlan `json:"reel" yaml:"reel,omitempty"`
}

// Result is a generated calendar plus bookkeeping for the caller.
type Result struct {
	Posts         []Post
	Enhanced      int
	ReelsPlanned  int
	FallbackCount map[string]int
}

// Generator is not safe for concurrent use; it owns its random source.
type Generator struct {
	captions *CaptionComposer
	reels    *ReelPlanner
}

func NewGenerator(rng *rand.Rand, enhancer TextEnhancer, enhanceTimeout time.Duration) *Generator {
	return &Generator{
		captions: NewCaptionComposer(rng, enhancer, enhanceTimeout),
		reels:    NewReelPlanner(rng),
	}
}

// NewRand returns a random source that always yields the same sequence for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate builds days × len(platforms) posts, day-major. The pillar advances
// once per day, not per platform.
func (g *Generator) Generate(ctx context.Context, req Request) Result {
	industry := strings.TrimSpace(req.Industry)
	if industry == "" {
		industry = DefaultIndustry
	}
	displayIndustry := capitalize(industry)
	tone := ParseTone(req.Tone)
	platforms := NormalizePlatforms(req.Platforms)
	hashtags := BuildHashtags(industry, req.NicheKeywords)
	start := req.StartDate
	if start.IsZero() {
		start = time.Now()
	}

	res := Result{Posts: []Post{}, FallbackCount: make(map[string]int)}
	if req.Days <= 0 {
		return res
	}
	res.Posts = make([]Post, 0, req.Days*len(platforms))

	for day := 0; day < req.Days; day++ {
		pillar := PillarForDay(day)
		date := start.AddDate(0, 0, day).Format(DateLayout)

		for _, platform := range platforms {
			caption := g.captions.Compose(ctx, CaptionInput{
				Industry:      displayIndustry,
				Tone:          tone,
				Pillar:        pillar,
				Platform:      platform,
				BrandKeywords: req.BrandKeywords,
				Hashtags:      hashtags,
				Goals:         req.Goals,
				Company:       req.Company,
			})
			if caption.Enhanced {
				res.Enhanced++
			} else {
				res.FallbackCount[caption.FallbackReason]++
			}

			post := Post{
				Date:        date,
				DayIndex:    day + 1,
				Platform:    platform,
				Pillar:      pillar.Name,
				Caption:     caption.Text,
				ImagePrompt: ImagePrompt(industry, pillar.Name, req.BrandKeywords),
			}
			if req.IncludeImages {
				u := ImageURL(industry, pillar.Name)
				post.ImageURL = &u
			}
			if IsReelCapable(platform) {
				plan := g.reels.Plan(ReelInput{
					Industry:       displayIndustry,
					Pillar:         pillar,
					BrandKeywords:  req.BrandKeywords,
					NicheKeywords:  req.NicheKeywords,
					Hashtags:       hashtags,
					Tone:           tone,
					Company:        req.Company,
					Style:          DetailString(req.Details, DetailReelStyle),
					Goals:          req.Goals,
					LengthSeconds:  DetailInt(req.Details, DetailReelLength),
					ProductionTier: DetailString(req.Details, DetailProductionTier),
				})
				post.Reel = &plan
				res.ReelsPlanned++
			}
			res.Posts = append(res.Posts, post)
		}
	}
	return res
}

// NormalizePlatforms trims entries and drops blanks, keeping input order and
// spelling. An empty result falls back to instagram.
func NormalizePlatforms(platforms []string) []string {
	out := nonBlank(platforms)
	if len(out) == 0 {
		return []string{PlatformInstagram}
	}
	return out
}

// ParseStartDate parses YYYY-MM-DD, falling back to today on any other input.
func ParseStartDate(s string, now time.Time) time.Time {
	if t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), now.Location()); err == nil {
		return t
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

func DetailString(details map[string]any, key string) string {
	if s, ok := details[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// DetailInt reads a number stored either as a JSON number or as digits in a string.
func DetailInt(details map[string]any, key string) int {
	switch v := details[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(v))
		return n
	}
	return 0
}
