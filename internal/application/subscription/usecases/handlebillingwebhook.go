package usecases

import (
	"context"
	"strconv"

	"togetherly/internal/domain/subscription"
	"togetherly/internal/domain/user"
	apperrors "togetherly/internal/shared/errors"
	"togetherly/internal/shared/logger"
)

type HandleBillingWebhookCommand struct {
	Payload   []byte
	Signature string
}

type HandleBillingWebhookResult struct {
	EventType string `json:"type"`
	Handled   bool   `json:"handled"`
}

type HandleBillingWebhookUseCase struct {
	subRepo  subscription.Repository
	userRepo user.Repository
	parser   WebhookParser
	// provider may be nil; checkout events then trust the event alone.
	provider subscription.BillingProvider
	metrics  WebhookMetrics
	tx       Transactor
	logger   logger.Interface
}

func NewHandleBillingWebhookUseCase(
	subRepo subscription.Repository,
	userRepo user.Repository,
	parser WebhookParser,
	provider subscription.BillingProvider,
	metrics WebhookMetrics,
	logger logger.Interface,
) *HandleBillingWebhookUseCase {
	return &HandleBillingWebhookUseCase{
		subRepo:  subRepo,
		userRepo: userRepo,
		parser:   parser,
		provider: provider,
		metrics:  metrics,
		logger:   logger,
	}
}

// WithTransactor makes the subscription row and the user's paid flag commit together.
func (uc *HandleBillingWebhookUseCase) WithTransactor(tx Transactor) *HandleBillingWebhookUseCase {
	uc.tx = tx
	return uc
}

func (uc *HandleBillingWebhookUseCase) Execute(ctx context.Context, cmd HandleBillingWebhookCommand) (*HandleBillingWebhookResult, error) {
	event, err := uc.parser.ParseWebhook(cmd.Payload, cmd.Signature)
	if err != nil {
		uc.logger.Warnw("rejected billing webhook", "error", err)
		return nil, apperrors.NewBadRequestError("invalid webhook payload").WithCause(err)
	}
	if uc.metrics != nil {
		uc.metrics.RecordWebhook(event.Type)
	}

	res := &HandleBillingWebhookResult{EventType: event.Type}
	switch event.Type {
	case subscription.EventCheckoutCompleted:
		if err := uc.checkoutCompleted(ctx, event); err != nil {
			return nil, err
		}
		res.Handled = true
	case subscription.EventSubscriptionUpdated, subscription.EventSubscriptionDeleted:
		handled, err := uc.subscriptionChanged(ctx, event)
		if err != nil {
			return nil, err
		}
		res.Handled = handled
	default:
		uc.logger.Debugw("ignoring billing webhook", "type", event.Type, "event_id", event.ID)
	}
	return res, nil
}

func (uc *HandleBillingWebhookUseCase) checkoutCompleted(ctx context.Context, event *subscription.WebhookEvent) error {
	userID, err := strconv.ParseUint(event.ClientReferenceID, 10, 64)
	if err != nil || userID == 0 {
		uc.logger.Warnw("checkout webhook without a user reference", "event_id", event.ID, "client_reference_id", event.ClientReferenceID)
		return apperrors.NewBadRequestError("checkout session has no user reference")
	}

	remote := &subscription.RemoteSubscription{
		ID:         event.SubscriptionID,
		CustomerID: event.CustomerID,
		Status:     subscription.StatusActive,
	}
	if uc.provider != nil && event.SubscriptionID != "" {
		if fetched, err := uc.provider.RetrieveSubscription(ctx, event.SubscriptionID); err == nil {
			remote = fetched
		} else {
			uc.logger.Warnw("could not fetch subscription after checkout, assuming active",
				"subscription_id", event.SubscriptionID, "error", err)
		}
	}

	sub, err := uc.subRepo.GetByExternalID(ctx, event.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to look up subscription", "external_id", event.SubscriptionID, "error", err)
		return apperrors.NewInternalError("failed to record subscription").WithCause(err)
	}
	if sub == nil || event.SubscriptionID == "" {
		sub, err = subscription.NewSubscription(uint(userID), event.SubscriptionID, remote.CustomerID, remote.Status, remote.CurrentPeriodEnd)
		if err != nil {
			return apperrors.NewBadRequestError(err.Error())
		}
	} else {
		sub.ApplyRemote(remote)
	}

	return uc.save(ctx, sub, event)
}

// subscriptionChanged reports false for subscriptions this service never created.
func (uc *HandleBillingWebhookUseCase) subscriptionChanged(ctx context.Context, event *subscription.WebhookEvent) (bool, error) {
	sub, err := uc.subRepo.GetByExternalID(ctx, event.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to look up subscription", "external_id", event.SubscriptionID, "error", err)
		return false, apperrors.NewInternalError("failed to update subscription").WithCause(err)
	}
	if sub == nil {
		uc.logger.Infow("webhook for unknown subscription", "external_id", event.SubscriptionID, "type", event.Type)
		return false, nil
	}

	status := event.Status
	if event.Type == subscription.EventSubscriptionDeleted && status == "" {
		status = subscription.StatusCanceled
	}
	sub.ApplyRemote(&subscription.RemoteSubscription{
		ID:               event.SubscriptionID,
		CustomerID:       event.CustomerID,
		Status:           status,
		CurrentPeriodEnd: event.CurrentPeriodEnd,
	})
	if err := uc.save(ctx, sub, event); err != nil {
		return false, err
	}
	return true, nil
}

func (uc *HandleBillingWebhookUseCase) save(ctx context.Context, sub *subscription.Subscription, event *subscription.WebhookEvent) error {
	err := runInTx(ctx, uc.tx, func(ctx context.Context) error {
		if err := uc.subRepo.Upsert(ctx, sub); err != nil {
			uc.logger.Errorw("failed to save subscription", "external_id", sub.ExternalID(), "error", err)
			return apperrors.NewInternalError("failed to record subscription").WithCause(err)
		}
		if err := uc.userRepo.SetPaid(ctx, sub.UserID(), sub.IsPaid()); err != nil {
			uc.logger.Errorw("failed to update user paid flag", "user_id", sub.UserID(), "error", err)
			return apperrors.NewInternalError("failed to update account").WithCause(err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	uc.logger.Infow("billing webhook applied",
		"type", event.Type,
		"event_id", event.ID,
		"user_id", sub.UserID(),
		"status", sub.Status(),
		"is_paid", sub.IsPaid(),
	)
	return nil
}
