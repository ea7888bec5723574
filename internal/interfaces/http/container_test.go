package http

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"togetherly/internal/domain/subscription"
	"togetherly/internal/infrastructure/config"
	"togetherly/internal/shared/logger"
)

type nopReconciler struct{}

func (nopReconciler) RunOnce(context.Context, string) (*subscription.ReconcileResult, error) {
	return &subscription.ReconcileResult{OK: true}, nil
}

func TestNewReconcileScheduler(t *testing.T) {
	t.Run("billing not configured", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Scheduler.ReconcileIntervalMinutes = 60

		assert.Nil(t, newReconcileScheduler(cfg, nopReconciler{}, logger.NewNop()))
	})

	t.Run("billing configured", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Billing.SecretKey = "sk_test_123"
		cfg.Scheduler.ReconcileIntervalMinutes = 60

		s := newReconcileScheduler(cfg, nopReconciler{}, logger.NewNop())
		require.NotNil(t, s)
		s.Stop()
	})
}
