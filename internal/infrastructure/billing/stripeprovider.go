// Package billing talks to Stripe for checkout, subscription state and webhooks.
package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/subscription"
	"github.com/stripe/stripe-go/v82/webhook"

	domainSub "togetherly/internal/domain/subscription"
	"togetherly/internal/shared/config"
	"togetherly/internal/shared/logger"
)

// ErrInvalidSignature is returned when a webhook signature does not verify.
var ErrInvalidSignature = errors.New("billing: invalid webhook signature")

// StripeProvider implements subscription.BillingProvider plus checkout and
// webhook parsing on top of the Stripe API.
type StripeProvider struct {
	cfg    config.BillingConfig
	logger logger.Interface
}

// Option customizes the Stripe backend.
type Option func(*stripe.BackendConfig)

// WithAPIURL points the client at another API host.
func WithAPIURL(url string) Option {
	return func(bc *stripe.BackendConfig) {
		bc.URL = stripe.String(url)
	}
}

// NewStripeProvider configures the package-level Stripe client. Callers
// construct it only when cfg.Configured() is true.
func NewStripeProvider(cfg config.BillingConfig, log logger.Interface, opts ...Option) *StripeProvider {
	stripe.Key = cfg.SecretKey
	bc := &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: cfg.Timeout()},
		MaxNetworkRetries: stripe.Int64(1),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	}
	for _, opt := range opts {
		opt(bc)
	}
	stripe.SetBackend(stripe.APIBackend, stripe.GetBackendWithConfig(stripe.APIBackend, bc))

	return &StripeProvider{cfg: cfg, logger: log}
}

func (p *StripeProvider) RetrieveSubscription(ctx context.Context, externalID string) (*domainSub.RemoteSubscription, error) {
	params := &stripe.SubscriptionParams{}
	params.Context = ctx

	sub, err := subscription.Get(externalID, params)
	if err != nil {
		return nil, p.mapError("retrieve", externalID, err)
	}
	return toRemote(sub), nil
}

func (p *StripeProvider) CancelSubscription(ctx context.Context, externalID string) (*domainSub.RemoteSubscription, error) {
	params := &stripe.SubscriptionCancelParams{}
	params.Context = ctx

	sub, err := subscription.Cancel(externalID, params)
	if err != nil {
		return nil, p.mapError("cancel", externalID, err)
	}
	return toRemote(sub), nil
}

// CreateCheckoutSession returns the hosted checkout URL for a monthly
// subscription. The local user id travels as the client reference.
func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, req domainSub.CheckoutRequest) (string, error) {
	if p.cfg.PriceID == "" {
		return "", fmt.Errorf("billing: no price configured: %w", domainSub.ErrBillingNotConfigured)
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(p.cfg.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(p.cfg.SuccessURL),
		CancelURL:         stripe.String(p.cfg.CancelURL),
		ClientReferenceID: stripe.String(strconv.FormatUint(uint64(req.UserID), 10)),
	}
	if req.Email != "" {
		params.CustomerEmail = stripe.String(req.Email)
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("billing: create checkout session: %w", err)
	}
	return s.URL, nil
}

// ParseWebhook decodes a webhook body. The signature is verified only when a
// real webhook secret is configured; otherwise the body is taken as plain JSON.
func (p *StripeProvider) ParseWebhook(payload []byte, signature string) (*domainSub.WebhookEvent, error) {
	return ParseWebhook(p.cfg, payload, signature)
}

// ParseWebhook is usable without an API key so the webhook endpoint keeps
// working in local setups where only the event format matters.
func ParseWebhook(cfg config.BillingConfig, payload []byte, signature string) (*domainSub.WebhookEvent, error) {
	var event stripe.Event
	if cfg.VerifyWebhooks() {
		ev, err := webhook.ConstructEventWithOptions(payload, signature, cfg.WebhookSecret,
			webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}
		event = ev
	} else if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("billing: decode webhook: %w", err)
	}

	out := &domainSub.WebhookEvent{ID: event.ID, Type: string(event.Type)}
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return out, nil
	}

	switch out.Type {
	case domainSub.EventCheckoutCompleted:
		var cs stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
			return nil, fmt.Errorf("billing: decode checkout session: %w", err)
		}
		out.ClientReferenceID = cs.ClientReferenceID
		if cs.Customer != nil {
			out.CustomerID = cs.Customer.ID
		}
		if cs.Subscription != nil {
			out.SubscriptionID = cs.Subscription.ID
		}
	case domainSub.EventSubscriptionUpdated, domainSub.EventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return nil, fmt.Errorf("billing: decode subscription: %w", err)
		}
		remote := toRemote(&sub)
		out.SubscriptionID = remote.ID
		out.CustomerID = remote.CustomerID
		out.Status = remote.Status
		out.CurrentPeriodEnd = remote.CurrentPeriodEnd
	}
	return out, nil
}

func (p *StripeProvider) mapError(op, externalID string, err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) &&
		(stripeErr.HTTPStatusCode == http.StatusNotFound || stripeErr.Code == stripe.ErrorCodeResourceMissing) {
		return fmt.Errorf("billing: %s %s: %w", op, externalID, domainSub.ErrRemoteNotFound)
	}
	p.logger.Warnw("stripe call failed", "operation", op, "subscription_id", externalID, "error", err)
	return fmt.Errorf("billing: %s stripe subscription: %w", op, err)
}

func toRemote(sub *stripe.Subscription) *domainSub.RemoteSubscription {
	remote := &domainSub.RemoteSubscription{
		ID:     sub.ID,
		Status: domainSub.ParseStatus(string(sub.Status)),
	}
	if sub.Customer != nil {
		remote.CustomerID = sub.Customer.ID
	}
	// period bounds live on the items since the 2025-03 API
	if sub.Items != nil {
		for _, item := range sub.Items.Data {
			if item == nil || item.CurrentPeriodEnd == 0 {
				continue
			}
			end := time.Unix(item.CurrentPeriodEnd, 0).UTC()
			if remote.CurrentPeriodEnd == nil || end.After(*remote.CurrentPeriodEnd) {
				remote.CurrentPeriodEnd = &end
			}
		}
	}
	return remote
}
