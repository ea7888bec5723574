package usecases

import (
	"context"

	"togetherly/internal/domain/subscription"
)

// CheckoutProvider starts hosted checkouts; implemented by the Stripe provider.
type CheckoutProvider interface {
	CreateCheckoutSession(ctx context.Context, req subscription.CheckoutRequest) (string, error)
}

// WebhookParser verifies and decodes a billing webhook body.
type WebhookParser interface {
	ParseWebhook(payload []byte, signature string) (*subscription.WebhookEvent, error)
}

// WebhookParserFunc adapts a plain function to WebhookParser.
type WebhookParserFunc func(payload []byte, signature string) (*subscription.WebhookEvent, error)

func (f WebhookParserFunc) ParseWebhook(payload []byte, signature string) (*subscription.WebhookEvent, error) {
	return f(payload, signature)
}

type ReconcileMetrics interface {
	RecordReconcile(trigger string, ok bool, updated, failed, checked int)
}

type WebhookMetrics interface {
	RecordWebhook(eventType string)
}

// Transactor runs fn in one database transaction; repositories pick the
// transaction up from the context.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

func runInTx(ctx context.Context, tx Transactor, fn func(ctx context.Context) error) error {
	if tx == nil {
		return fn(ctx)
	}
	return tx.RunInTransaction(ctx, fn)
}
