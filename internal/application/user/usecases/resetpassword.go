package usecases

import (
	"context"
	"errors"
	"strings"

	"togetherly/internal/domain/user"
	"togetherly/internal/shared/biztime"
	apperrors "togetherly/internal/shared/errors"
	"togetherly/internal/shared/logger"
)

type ResetPasswordCommand struct {
	Token       string
	NewPassword string
}

type ResetPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher PasswordHasher
	logger         logger.Interface
}

func NewResetPasswordUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{userRepo: userRepo, passwordHasher: hasher, logger: logger}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	token := strings.TrimSpace(cmd.Token)
	if token == "" {
		return apperrors.NewValidationError("token is required").WithDetail("field", "token")
	}
	if err := validatePassword(cmd.NewPassword); err != nil {
		return err
	}

	tokenHash := HashResetToken(token)
	existingUser, err := uc.userRepo.GetByResetTokenHash(ctx, tokenHash)
	if err != nil {
		uc.logger.Errorw("failed to look up reset token", "error", err)
		return apperrors.NewInternalError("failed to reset password").WithCause(err)
	}
	if existingUser == nil {
		return apperrors.NewBadRequestError("reset link is invalid or has expired")
	}

	hash, err := uc.passwordHasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return apperrors.NewInternalError("failed to reset password").WithCause(err)
	}

	if err := existingUser.CompletePasswordReset(tokenHash, hash, biztime.NowUTC()); err != nil {
		if errors.Is(err, user.ErrResetTokenExpired) || errors.Is(err, user.ErrResetTokenInvalid) {
			return apperrors.NewBadRequestError("reset link is invalid or has expired")
		}
		return apperrors.NewInternalError("failed to reset password").WithCause(err)
	}

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", existingUser.ID(), "error", err)
		return apperrors.NewInternalError("failed to reset password").WithCause(err)
	}

	uc.logger.Infow("password reset completed", "user_id", existingUser.ID())
	return nil
}
