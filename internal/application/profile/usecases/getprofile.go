package usecases

import (
	"context"

	"togetherly/internal/domain/profile"
	apperrors "togetherly/internal/shared/errors"
	"togetherly/internal/shared/logger"
)

type GetProfileUseCase struct {
	repo   profile.Repository
	logger logger.Interface
}

func NewGetProfileUseCase(repo profile.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{repo: repo, logger: logger}
}

// Execute returns nil without error when the caller has no readable profile.
func (uc *GetProfileUseCase) Execute(ctx context.Context, profileID string, userID uint) (*profile.Profile, error) {
	if profileID == "" {
		return nil, nil
	}
	p, err := uc.repo.Get(ctx, profileID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "profile_id", profileID, "error", err)
		return nil, apperrors.NewInternalError("failed to load profile").WithCause(err)
	}
	if p == nil || !p.OwnedBy(userID) {
		return nil, nil
	}
	return p, nil
}
