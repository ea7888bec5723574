package usecases

import (
	"context"

	"togetherly/internal/domain/user"
	apperrors "togetherly/internal/shared/errors"
	"togetherly/internal/shared/logger"
)

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, userID uint) (*user.User, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, apperrors.NewInternalError("failed to load account").WithCause(err)
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	return u, nil
}
