package handlers

import (
	"context"

	"togetherly/internal/application/profile/usecases"
	"togetherly/internal/domain/profile"
)

type saveProfileUseCase interface {
	Execute(ctx context.Context, cmd usecases.SaveProfileCommand) (*profile.Profile, error)
}

type getProfileUseCase interface {
	Execute(ctx context.Context, profileID string, userID uint) (*profile.Profile, error)
}
