package usecases

import (
	"context"
	"errors"

	"togetherly/internal/domain/subscription"
	"togetherly/internal/domain/user"
	apperrors "togetherly/internal/shared/errors"
	"togetherly/internal/shared/logger"
)

type CreateCheckoutSessionUseCase struct {
	userRepo user.Repository
	checkout CheckoutProvider
	logger   logger.Interface
}

func NewCreateCheckoutSessionUseCase(userRepo user.Repository, checkout CheckoutProvider, logger logger.Interface) *CreateCheckoutSessionUseCase {
	return &CreateCheckoutSessionUseCase{userRepo: userRepo, checkout: checkout, logger: logger}
}

// Execute returns the hosted checkout URL.
func (uc *CreateCheckoutSessionUseCase) Execute(ctx context.Context, userID uint) (string, error) {
	if uc.checkout == nil {
		return "", apperrors.NewNotConfiguredError("billing is not configured")
	}
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load user for checkout", "user_id", userID, "error", err)
		return "", apperrors.NewInternalError("failed to start checkout").WithCause(err)
	}
	if u == nil {
		return "", apperrors.NewUnauthorizedError("sign in to subscribe")
	}

	url, err := uc.checkout.CreateCheckoutSession(ctx, subscription.CheckoutRequest{UserID: u.ID(), Email: u.Email()})
	if err != nil {
		if errors.Is(err, subscription.ErrBillingNotConfigured) {
			return "", apperrors.NewNotConfiguredError("billing price is not configured")
		}
		uc.logger.Errorw("failed to create checkout session", "user_id", u.ID(), "error", err)
		return "", apperrors.NewExternalServiceError("failed to start checkout").WithCause(err)
	}

	uc.logger.Infow("checkout session created", "user_id", u.ID())
	return url, nil
}
