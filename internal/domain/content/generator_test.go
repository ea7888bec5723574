package content

import (
	"strings"
	"testing"
	"time"
)

var day0 = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func TestGenerateCountAndOrder(t *testing.T) {
	platforms := []string{"instagram", "linkedin", "TikTok"}
	for _, days := range []int{0, 1, 6, 13} {
		res := NewGenerator(NewRand(1), nil, 0).Generate(t.Context(), Request{
			Days:      days,
			StartDate: day0,
			Industry:  "Coach",
			Platforms: platforms,
		})

		if len(res.Posts) != days*len(platforms) {
			t.Fatalf("days=%d: got %d posts, want %d", days, len(res.Posts), days*len(platforms))
		}
		for i, p := range res.Posts {
			day := i / len(platforms)
			if p.DayIndex != day+1 {
				t.Errorf("post %d DayIndex = %d, want %d", i, p.DayIndex, day+1)
			}
			if p.Platform != platforms[i%len(platforms)] {
				t.Errorf("post %d platform = %q, want %q", i, p.Platform, platforms[i%len(platforms)])
			}
			if p.Pillar != PillarForDay(day).Name {
				t.Errorf("post %d pillar = %q, want %q", i, p.Pillar, PillarForDay(day).Name)
			}
			if want := day0.AddDate(0, 0, day).Format(DateLayout); p.Date != want {
				t.Errorf("post %d date = %q, want %q", i, p.Date, want)
			}
		}
	}
}

func TestGeneratePillarRotationWraps(t *testing.T) {
	res := NewGenerator(NewRand(2), nil, 0).Generate(t.Context(), Request{Days: 8, StartDate: day0})
	if res.Posts[6].Pillar != PillarEducational || res.Posts[7].Pillar != PillarBehindTheScenes {
		t.Errorf("days 7 and 8 got %q and %q", res.Posts[6].Pillar, res.Posts[7].Pillar)
	}
}

func TestGenerateReelsOnlyOnVideoPlatforms(t *testing.T) {
	res := NewGenerator(NewRand(3), nil, 0).Generate(t.Context(), Request{
		Days:      2,
		StartDate: day0,
		Platforms: []string{"Instagram", "facebook", "SHORT_VIDEO", "twitter", "tiktok"},
	})

	for _, p := range res.Posts {
		if got, want := p.Reel != nil, IsReelCapable(p.Platform); got != want {
			t.Errorf("%s: has reel = %v, want %v", p.Platform, got, want)
		}
	}
	if res.ReelsPlanned != 6 {
		t.Errorf("ReelsPlanned = %d, want 6", res.ReelsPlanned)
	}
}

func TestGenerateImages(t *testing.T) {
	req := Request{Days: 1, StartDate: day0, Industry: "Retail", BrandKeywords: []string{"denim", "vintage"}}

	res := NewGenerator(NewRand(4), nil, 0).Generate(t.Context(), req)
	if res.Posts[0].ImageURL != nil {
		t.Errorf("ImageURL = %q, want nil when images are off", *res.Posts[0].ImageURL)
	}
	if !strings.Contains(res.Posts[0].ImagePrompt, "denim, vintage") {
		t.Errorf("ImagePrompt = %q", res.Posts[0].ImagePrompt)
	}

	req.IncludeImages = true
	res = NewGenerator(NewRand(4), nil, 0).Generate(t.Context(), req)
	if res.Posts[0].ImageURL == nil || *res.Posts[0].ImageURL != "https://source.unsplash.com/featured/?Retail+Educational" {
		t.Errorf("ImageURL = %v", res.Posts[0].ImageURL)
	}
}

func TestGenerateDefaults(t *testing.T) {
	res := NewGenerator(NewRand(5), nil, 0).Generate(t.Context(), Request{Days: 1, StartDate: day0})

	if len(res.Posts) != 1 || res.Posts[0].Platform != PlatformInstagram {
		t.Fatalf("posts = %+v, want one instagram post", res.Posts)
	}
	if !strings.Contains(res.Posts[0].Caption, "#Business") {
		t.Errorf("caption %q lacks the default industry tag", res.Posts[0].Caption)
	}
}

func TestGenerateBakeryScenario(t *testing.T) {
	req := Request{
		Days:      1,
		StartDate: day0,
		Industry:  "Bakery",
		Tone:      "friendly",
		Platforms: []string{"instagram"},
		Company:   "Laura's Bakery",
	}
	tagLine := strings.Join(BuildHashtags("Bakery", nil), " ")

	mentions := 0
	const runs = 40
	for seed := uint64(0); seed < runs; seed++ {
		res := NewGenerator(NewRand(seed), nil, 0).Generate(t.Context(), req)
		if len(res.Posts) != 1 {
			t.Fatalf("got %d posts, want 1", len(res.Posts))
		}
		post := res.Posts[0]
		if post.Reel == nil {
			t.Fatal("instagram post has no reel")
		}
		if !strings.Contains(post.Caption, tagLine) {
			t.Errorf("caption %q missing %q", post.Caption, tagLine)
		}
		if strings.Contains(post.Caption, "Laura's Bakery") {
			mentions++
		}
	}
	if mentions == 0 {
		t.Error("company never appeared across seeds")
	}
}

func TestGenerateReadsReelDetails(t *testing.T) {
	res := NewGenerator(NewRand(6), nil, 0).Generate(t.Context(), Request{
		Days:      1,
		StartDate: day0,
		Industry:  "Fitness",
		Platforms: []string{"tiktok"},
		Details: map[string]any{
			DetailReelStyle:      "Workout montage",
			DetailReelLength:     float64(45),
			DetailProductionTier: "PRO",
		},
	})

	reel := res.Posts[0].Reel
	if reel.Style != "Workout montage" || reel.LengthSeconds != 45 || reel.ProductionTier != TierPro {
		t.Errorf("reel = style %q length %d tier %q", reel.Style, reel.LengthSeconds, reel.ProductionTier)
	}
}

func TestParseStartDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)
	tests := map[string]string{
		"2025-01-31":   "2025-01-31",
		" 2025-02-01 ": "2025-02-01",
		"31/01/2025":   "2025-06-15",
		"":             "2025-06-15",
	}
	for in, want := range tests {
		if got := ParseStartDate(in, now).Format(DateLayout); got != want {
			t.Errorf("ParseStartDate(%q) = %s, want %s", in, got, want)
		}
	}
}
