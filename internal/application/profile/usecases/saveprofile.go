package usecases

import (
	"context"
	"errors"
	"strings"

	"togetherly/internal/domain/content"
	"togetherly/internal/domain/profile"
	"togetherly/internal/shared/biztime"
	apperrors "togetherly/internal/shared/errors"
	"togetherly/internal/shared/logger"
)

const defaultTone = "friendly"

// SaveProfileCommand upserts the caller's profile. ProfileID is the id the
// client already holds, if any; IncludeImages defaults to true when nil.
type SaveProfileCommand struct {
	UserID        uint
	ProfileID     string
	Industry      string
	Tone          string
	Platforms     []string
	BrandKeywords []string
	NicheKeywords []string
	Goals         []string
	Company       string
	IncludeImages *bool
	Details       map[string]any
}

type SaveProfileUseCase struct {
	repo   profile.Repository
	logger logger.Interface
}

func NewSaveProfileUseCase(repo profile.Repository, logger logger.Interface) *SaveProfileUseCase {
	return &SaveProfileUseCase{repo: repo, logger: logger}
}

func (uc *SaveProfileUseCase) Execute(ctx context.Context, cmd SaveProfileCommand) (*profile.Profile, error) {
	fields := profile.Fields{
		Industry:      strings.TrimSpace(cmd.Industry),
		Tone:          strings.TrimSpace(cmd.Tone),
		Platforms:     cmd.Platforms,
		BrandKeywords: cmd.BrandKeywords,
		NicheKeywords: cmd.NicheKeywords,
		Goals:         cmd.Goals,
		Company:       cmd.Company,
		IncludeImages: true,
		Details:       cmd.Details,
	}
	if fields.Industry == "" {
		fields.Industry = content.DefaultIndustry
	}
	if fields.Tone == "" {
		fields.Tone = defaultTone
	}
	if cmd.IncludeImages != nil {
		fields.IncludeImages = *cmd.IncludeImages
	}

	existing, err := uc.load(ctx, cmd)
	if err != nil {
		return nil, err
	}

	var p *profile.Profile
	if existing != nil {
		if err := existing.Update(fields, biztime.NowUTC()); err != nil {
			return nil, mapProfileError(err)
		}
		p = existing
	} else {
		var owner *uint
		if cmd.UserID != 0 {
			id := cmd.UserID
			owner = &id
		}
		p, err = profile.NewProfile(owner, fields)
		if err != nil {
			return nil, mapProfileError(err)
		}
	}

	if err := uc.repo.Save(ctx, p); err != nil {
		uc.logger.Errorw("failed to save profile", "profile_id", p.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to save profile").WithCause(err)
	}

	uc.logger.Infow("profile saved", "profile_id", p.ID(), "user_id", cmd.UserID, "created", existing == nil)
	return p, nil
}

// load returns the profile named by the command when the caller may edit it.
// A profile owned by someone else is treated as absent.
func (uc *SaveProfileUseCase) load(ctx context.Context, cmd SaveProfileCommand) (*profile.Profile, error) {
	if cmd.ProfileID == "" {
		return nil, nil
	}
	p, err := uc.repo.Get(ctx, cmd.ProfileID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "profile_id", cmd.ProfileID, "error", err)
		return nil, apperrors.NewInternalError("failed to load profile").WithCause(err)
	}
	if p == nil || !p.OwnedBy(cmd.UserID) {
		return nil, nil
	}
	return p, nil
}

func mapProfileError(err error) error {
	switch {
	case errors.Is(err, profile.ErrCompanyTooLong):
		return apperrors.NewValidationError("company name too long").WithDetail("field", "company")
	case errors.Is(err, profile.ErrCompanyInvalid):
		return apperrors.NewValidationError("company name contains invalid characters").WithDetail("field", "company")
	}
	return apperrors.NewValidationError(err.Error())
}
