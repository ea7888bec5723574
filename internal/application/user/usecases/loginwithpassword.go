package usecases

import (
	"context"

	"togetherly/internal/domain/user"
	"togetherly/internal/shared/biztime"
	apperrors "togetherly/internal/shared/errors"
	"togetherly/internal/shared/logger"
)

type LoginWithPasswordCommand struct {
	Email    string
	Password string
}

type LoginWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher PasswordHasher
	sessions       SessionIssuer
	logger         logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	sessions SessionIssuer,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		sessions:       sessions,
		logger:         logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*AuthResult, error) {
	invalid := apperrors.NewUnauthorizedError("invalid email or password")

	email, err := user.NormalizeEmail(cmd.Email)
	if err != nil {
		return nil, invalid
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, apperrors.NewInternalError("failed to sign in").WithCause(err)
	}
	// Same answer for unknown email and wrong password.
	if existingUser == nil {
		return nil, invalid
	}
	if err := uc.passwordHasher.Verify(cmd.Password, existingUser.PasswordHash()); err != nil {
		uc.logger.Infow("failed login attempt", "user_id", existingUser.ID())
		return nil, invalid
	}

	existingUser.RecordLogin(biztime.NowUTC())
	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Warnw("failed to record login time", "user_id", existingUser.ID(), "error", err)
	}

	token, exp, err := uc.sessions.Generate(existingUser.ID(), existingUser.Email())
	if err != nil {
		uc.logger.Errorw("failed to issue session", "user_id", existingUser.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to start session").WithCause(err)
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.ID())
	return &AuthResult{User: existingUser, Token: token, ExpiresAt: exp.Unix()}, nil
}
