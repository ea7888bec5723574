package http

import (
	subscriptionUsecases "togetherly/internal/application/subscription/usecases"
	"togetherly/internal/domain/content"
	"togetherly/internal/domain/subscription"
	"togetherly/internal/infrastructure/billing"
	"togetherly/internal/infrastructure/enhancer"
)

// The optional* helpers turn an unconfigured client into a nil interface.
// Passing the typed nil pointer straight through would make the use cases'
// nil checks miss.

func optionalEnhancer(c *enhancer.Client) content.TextEnhancer {
	if c == nil {
		return nil
	}
	return c
}

func optionalBillingProvider(p *billing.StripeProvider) subscription.BillingProvider {
	if p == nil {
		return nil
	}
	return p
}

func optionalCheckoutProvider(p *billing.StripeProvider) subscriptionUsecases.CheckoutProvider {
	if p == nil {
		return nil
	}
	return p
}
