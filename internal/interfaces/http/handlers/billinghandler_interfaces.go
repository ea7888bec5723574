package handlers

import (
	"context"

	"togetherly/internal/application/subscription/usecases"
	"togetherly/internal/domain/subscription"
)

// Use case interfaces for BillingHandler.

type createCheckoutSessionUseCase interface {
	Execute(ctx context.Context, userID uint) (string, error)
}

type handleBillingWebhookUseCase interface {
	Execute(ctx context.Context, cmd usecases.HandleBillingWebhookCommand) (*usecases.HandleBillingWebhookResult, error)
}

type cancelSubscriptionUseCase interface {
	Execute(ctx context.Context, userID uint) (*subscription.Subscription, error)
}

type getAccountUseCase interface {
	Execute(ctx context.Context, userID uint) (*usecases.AccountView, error)
}

type reconcileSubscriptionsUseCase interface {
	Execute(ctx context.Context, cmd usecases.ReconcileCommand) (*usecases.ReconcileOutcome, error)
}

type getReconcileJobUseCase interface {
	Execute(ctx context.Context, jobID string) (*subscription.ReconcileJob, error)
}
