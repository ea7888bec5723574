package usecases

import (
	"context"
	"sync"
	"time"

	"togetherly/internal/domain/user"
	"togetherly/internal/infrastructure/token"
	"togetherly/internal/shared/biztime"
	apperrors "togetherly/internal/shared/errors"
	"togetherly/internal/shared/logger"
)

const (
	DefaultResetTokenTTL = 30 * time.Minute

	// rateLimitWindow is the minimum gap between reset mails to one address
	rateLimitWindow = 1 * time.Minute
	// rateLimitCleanupInterval is how often expired entries are cleaned up
	rateLimitCleanupInterval = 10 * time.Minute
)

type RequestPasswordResetCommand struct {
	Email string
}

type RequestPasswordResetUseCase struct {
	userRepo      user.Repository
	emailService  EmailService
	tokenTTL      time.Duration
	logger        logger.Interface
	rateLimiter   map[string]time.Time
	rateLimiterMu sync.Mutex
	lastCleanup   time.Time
}

func NewRequestPasswordResetUseCase(
	userRepo user.Repository,
	emailService EmailService,
	tokenTTL time.Duration,
	logger logger.Interface,
) *RequestPasswordResetUseCase {
	if tokenTTL <= 0 {
		tokenTTL = DefaultResetTokenTTL
	}
	return &RequestPasswordResetUseCase{
		userRepo:     userRepo,
		emailService: emailService,
		tokenTTL:     tokenTTL,
		logger:       logger,
		rateLimiter:  make(map[string]time.Time),
		lastCleanup:  biztime.NowUTC(),
	}
}

// Execute never reveals whether the address has an account.
func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, cmd RequestPasswordResetCommand) error {
	email, err := user.NormalizeEmail(cmd.Email)
	if err != nil {
		return apperrors.NewValidationError("invalid email address").WithDetail("field", "email")
	}
	if err := uc.checkRateLimit(email); err != nil {
		return err
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil
	}
	if existingUser == nil {
		uc.logger.Infow("password reset requested for unknown email")
		return nil
	}

	plainToken, tokenHash, err := token.Generate(token.PrefixReset)
	if err != nil {
		uc.logger.Errorw("failed to generate reset token", "error", err, "user_id", existingUser.ID())
		return apperrors.NewInternalError("failed to start password reset").WithCause(err)
	}
	existingUser.StartPasswordReset(tokenHash, biztime.NowUTC().Add(uc.tokenTTL))

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", existingUser.ID())
		return apperrors.NewInternalError("failed to start password reset").WithCause(err)
	}

	if uc.emailService != nil {
		if err := uc.emailService.SendPasswordResetEmail(email, plainToken); err != nil {
			uc.logger.Warnw("failed to send password reset email", "error", err, "user_id", existingUser.ID())
		}
	} else {
		uc.logger.Warnw("email is not configured, reset token not delivered", "user_id", existingUser.ID())
	}

	uc.recordRateLimit(email)
	uc.logger.Infow("password reset requested", "user_id", existingUser.ID())
	return nil
}

// HashResetToken is the form a reset token is stored and looked up in.
func HashResetToken(plainToken string) string {
	return token.Hash(plainToken)
}

func (uc *RequestPasswordResetUseCase) checkRateLimit(email string) error {
	uc.rateLimiterMu.Lock()
	defer uc.rateLimiterMu.Unlock()

	now := biztime.NowUTC()
	if now.Sub(uc.lastCleanup) > rateLimitCleanupInterval {
		uc.cleanupExpiredEntries(now)
		uc.lastCleanup = now
	}

	if lastRequest, exists := uc.rateLimiter[email]; exists {
		if now.Sub(lastRequest) < rateLimitWindow {
			return apperrors.NewBadRequestError("please wait before requesting another password reset")
		}
	}
	return nil
}

func (uc *RequestPasswordResetUseCase) recordRateLimit(email string) {
	uc.rateLimiterMu.Lock()
	defer uc.rateLimiterMu.Unlock()
	uc.rateLimiter[email] = biztime.NowUTC()
}

// cleanupExpiredEntries must be called with rateLimiterMu held.
func (uc *RequestPasswordResetUseCase) cleanupExpiredEntries(now time.Time) {
	for email, lastRequest := range uc.rateLimiter {
		if now.Sub(lastRequest) > rateLimitCleanupInterval {
			delete(uc.rateLimiter, email)
		}
	}
}
