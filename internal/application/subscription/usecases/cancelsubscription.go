package usecases

import (
	"context"
	"errors"

	"togetherly/internal/domain/subscription"
	"togetherly/internal/domain/user"
	apperrors "togetherly/internal/shared/errors"
	"togetherly/internal/shared/logger"
)

type CancelSubscriptionUseCase struct {
	subRepo  subscription.Repository
	userRepo user.Repository
	provider subscription.BillingProvider
	logger   logger.Interface
}

// NewCancelSubscriptionUseCase accepts a nil provider; cancellation is then local only.
func NewCancelSubscriptionUseCase(
	subRepo subscription.Repository,
	userRepo user.Repository,
	provider subscription.BillingProvider,
	logger logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		subRepo:  subRepo,
		userRepo: userRepo,
		provider: provider,
		logger:   logger,
	}
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, userID uint) (*subscription.Subscription, error) {
	sub, err := uc.subRepo.GetLatestByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load subscription", "user_id", userID, "error", err)
		return nil, apperrors.NewInternalError("failed to cancel subscription").WithCause(err)
	}
	if sub == nil {
		return nil, apperrors.NewNotFoundError("no subscription to cancel")
	}

	if uc.provider != nil && sub.ExternalID() != "" {
		remote, err := uc.provider.CancelSubscription(ctx, sub.ExternalID())
		switch {
		case err == nil:
			sub.ApplyRemote(remote)
		case errors.Is(err, subscription.ErrRemoteNotFound):
			uc.logger.Warnw("subscription missing at provider, canceling locally", "external_id", sub.ExternalID())
		default:
			uc.logger.Errorw("failed to cancel subscription at provider", "external_id", sub.ExternalID(), "error", err)
			return nil, apperrors.NewExternalServiceError("billing provider refused the cancellation").WithCause(err)
		}
	}
	if sub.Status() != subscription.StatusCanceled {
		sub.Cancel()
	}

	if err := uc.subRepo.Upsert(ctx, sub); err != nil {
		uc.logger.Errorw("failed to save subscription", "subscription_id", sub.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to cancel subscription").WithCause(err)
	}
	if err := uc.userRepo.SetPaid(ctx, userID, false); err != nil {
		uc.logger.Errorw("failed to clear paid flag", "user_id", userID, "error", err)
		return nil, apperrors.NewInternalError("failed to update account").WithCause(err)
	}

	uc.logger.Infow("subscription canceled", "user_id", userID, "subscription_id", sub.ID())
	return sub, nil
}
