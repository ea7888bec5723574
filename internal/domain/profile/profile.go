// Package profile holds the business profile a calendar is generated from.
package profile

import (
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"

	"togetherly/internal/domain/content"
)

type Profile struct {
	id            string
	userID        *uint
	industry      string
	tone          string
	platforms     []string
	brandKeywords []string
	nicheKeywords []string
	goals         []string
	company       string
	includeImages bool
	details       map[string]any
	createdAt     time.Time
	updatedAt     time.Time
}

// Fields is the editable part of a profile.
type Fields struct {
	Industry      string
	Tone          string
	Platforms     []string
	BrandKeywords []string
	NicheKeywords []string
	Goals         []string
	Company       string
	IncludeImages bool
	Details       map[string]any
}

func NewProfile(userID *uint, f Fields) (*Profile, error) {
	now := time.Now().UTC()
	p := &Profile{
		id:        uuid.NewString(),
		userID:    userID,
		createdAt: now,
	}
	if err := p.Update(f, now); err != nil {
		return nil, err
	}
	return p, nil
}

type ProfileState struct {
	ID        string
	UserID    *uint
	Fields    Fields
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ReconstructProfile(s ProfileState) *Profile {
	return &Profile{
		id:            s.ID,
		userID:        s.UserID,
		industry:      s.Fields.Industry,
		tone:          s.Fields.Tone,
		platforms:     s.Fields.Platforms,
		brandKeywords: s.Fields.BrandKeywords,
		nicheKeywords: s.Fields.NicheKeywords,
		goals:         s.Fields.Goals,
		company:       s.Fields.Company,
		includeImages: s.Fields.IncludeImages,
		details:       s.Fields.Details,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
	}
}

// Update replaces the editable fields. The company name is validated first so
// an invalid name leaves the profile untouched.
func (p *Profile) Update(f Fields, now time.Time) error {
	company, err := NormalizeCompany(f.Company)
	if err != nil {
		return err
	}
	p.industry = f.Industry
	p.tone = f.Tone
	p.platforms = content.NormalizePlatforms(f.Platforms)
	p.brandKeywords = slices.Clone(f.BrandKeywords)
	p.nicheKeywords = slices.Clone(f.NicheKeywords)
	p.goals = slices.Clone(f.Goals)
	p.company = company
	p.includeImages = f.IncludeImages
	p.details = maps.Clone(f.Details)
	if p.details == nil {
		p.details = map[string]any{}
	}
	p.updatedAt = now
	return nil
}

func (p *Profile) ID() string              { return p.id }
func (p *Profile) UserID() *uint           { return p.userID }
func (p *Profile) Industry() string        { return p.industry }
func (p *Profile) Tone() string            { return p.tone }
func (p *Profile) Platforms() []string     { return p.platforms }
func (p *Profile) BrandKeywords() []string { return p.brandKeywords }
func (p *Profile) NicheKeywords() []string { return p.nicheKeywords }
func (p *Profile) Goals() []string         { return p.goals }
func (p *Profile) Company() string         { return p.company }
func (p *Profile) IncludeImages() bool     { return p.includeImages }
func (p *Profile) Details() map[string]any { return p.details }
func (p *Profile) CreatedAt() time.Time    { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time    { return p.updatedAt }

// Fields returns a copy of the editable fields.
func (p *Profile) Fields() Fields {
	return Fields{
		Industry:      p.industry,
		Tone:          p.tone,
		Platforms:     slices.Clone(p.platforms),
		BrandKeywords: slices.Clone(p.brandKeywords),
		NicheKeywords: slices.Clone(p.nicheKeywords),
		Goals:         slices.Clone(p.goals),
		Company:       p.company,
		IncludeImages: p.includeImages,
		Details:       maps.Clone(p.details),
	}
}

// OwnedBy reports whether userID may edit the profile. Anonymous profiles are
// open to everyone holding the id.
func (p *Profile) OwnedBy(userID uint) bool {
	return p.userID == nil || *p.userID == userID
}
