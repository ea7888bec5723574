package subscription

import (
	"context"
	"time"
)

// RemoteSubscription is the billing provider's authoritative view.
type RemoteSubscription struct {
	ID               string
	CustomerID       string
	Status           Status
	CurrentPeriodEnd *time.Time
}

// BillingProvider is the part of the billing integration the reconciler and
// account views need. Implementations return ErrRemoteNotFound for unknown ids.
type BillingProvider interface {
	RetrieveSubscription(ctx context.Context, externalID string) (*RemoteSubscription, error)
	CancelSubscription(ctx context.Context, externalID string) (*RemoteSubscription, error)
}

// Billing webhook event types the product reacts to.
const (
	EventCheckoutCompleted   = "checkout.session.completed"
	EventSubscriptionUpdated = "customer.subscription.updated"
	EventSubscriptionDeleted = "customer.subscription.deleted"
)

// WebhookEvent is a provider notification reduced to the fields used locally.
// For checkout completion ClientReferenceID carries the local user id and
// Status is empty.
type WebhookEvent struct {
	ID                string
	Type              string
	ClientReferenceID string
	CustomerID        string
	SubscriptionID    string
	Status            Status
	CurrentPeriodEnd  *time.Time
}

// CheckoutRequest starts a hosted checkout for one user.
type CheckoutRequest struct {
	UserID uint
	Email  string
}
