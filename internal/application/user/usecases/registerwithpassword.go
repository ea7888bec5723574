package usecases

import (
	"context"
	"errors"
	"unicode/utf8"

	"togetherly/internal/domain/user"
	apperrors "togetherly/internal/shared/errors"
	"togetherly/internal/shared/logger"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 72 // bcrypt ignores anything longer
)

type RegisterWithPasswordCommand struct {
	Email    string
	Password string
}

// AuthResult is returned by every operation that starts a session.
type AuthResult struct {
	User      *user.User
	Token     string
	ExpiresAt int64
}

type RegisterWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher PasswordHasher
	sessions       SessionIssuer
	logger         logger.Interface
}

func NewRegisterWithPasswordUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	sessions SessionIssuer,
	logger logger.Interface,
) *RegisterWithPasswordUseCase {
	return &RegisterWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		sessions:       sessions,
		logger:         logger,
	}
}

func (uc *RegisterWithPasswordUseCase) Execute(ctx context.Context, cmd RegisterWithPasswordCommand) (*AuthResult, error) {
	email, err := user.NormalizeEmail(cmd.Email)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid email address").WithDetail("field", "email")
	}
	if err := validatePassword(cmd.Password); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, apperrors.NewInternalError("failed to create account").WithCause(err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("an account with this email already exists")
	}

	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, apperrors.NewInternalError("failed to create account").WithCause(err)
	}

	newUser, err := user.NewUser(email, hash)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, user.ErrEmailTaken) || apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("an account with this email already exists")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, apperrors.NewInternalError("failed to create account").WithCause(err)
	}

	token, exp, err := uc.sessions.Generate(newUser.ID(), newUser.Email())
	if err != nil {
		uc.logger.Errorw("failed to issue session", "user_id", newUser.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to start session").WithCause(err)
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID())
	return &AuthResult{User: newUser, Token: token, ExpiresAt: exp.Unix()}, nil
}

func validatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n < MinPasswordLength {
		return apperrors.NewValidationError("password must be at least 8 characters").WithDetail("field", "password")
	}
	if len(password) > MaxPasswordLength {
		return apperrors.NewValidationError("password is too long").WithDetail("field", "password")
	}
	return nil
}
