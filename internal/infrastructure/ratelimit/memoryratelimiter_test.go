package ratelimit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimiter_BurstThenDeny(t *testing.T) {
	limiter := NewMemoryRateLimiter(RateLimitConfig{RequestsPerMinute: 3})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, allowed)

	// Other keys are independent.
	allowed, err = limiter.Allow(ctx, "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryRateLimiter_TightestWindowWins(t *testing.T) {
	limiter := NewMemoryRateLimiter(RateLimitConfig{RequestsPerMinute: 10, RequestsPerHour: 2})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "k")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	allowed, err := limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "k"))
	allowed, err = limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryRateLimiter_NoLimitsAllowsAll(t *testing.T) {
	limiter := NewMemoryRateLimiter(RateLimitConfig{})
	for i := 0; i < 100; i++ {
		allowed, err := limiter.Allow(context.Background(), "k")
		require.NoError(t, err)
		require.True(t, allowed)
	}
}
