package dto

import (
	"time"

	"togetherly/internal/domain/profile"
)

// ProfileResponse is the stored profile as returned by GET /api/profile.
type ProfileResponse struct {
	ID            string         `json:"id"`
	Industry      string         `json:"industry"`
	Tone          string         `json:"tone"`
	Platforms     []string       `json:"platforms"`
	BrandKeywords []string       `json:"brand_keywords"`
	NicheKeywords []string       `json:"niche_keywords"`
	Goals         []string       `json:"goals"`
	Company       string         `json:"company"`
	IncludeImages bool           `json:"include_images"`
	Details       map[string]any `json:"details"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func ToProfileResponse(p *profile.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}
	f := p.Fields()
	return &ProfileResponse{
		ID:            p.ID(),
		Industry:      f.Industry,
		Tone:          f.Tone,
		Platforms:     nonNil(f.Platforms),
		BrandKeywords: nonNil(f.BrandKeywords),
		NicheKeywords: nonNil(f.NicheKeywords),
		Goals:         nonNil(f.Goals),
		Company:       f.Company,
		IncludeImages: f.IncludeImages,
		Details:       f.Details,
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
