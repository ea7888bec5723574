package subscription

import "errors"

var (
	ErrUserRequired         = errors.New("subscription requires a user")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrRemoteNotFound       = errors.New("subscription not found at billing provider")
	ErrBillingNotConfigured = errors.New("billing provider is not configured")
)
