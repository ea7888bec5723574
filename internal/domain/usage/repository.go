package usage

import "context"

// Repository stores per-period reel counters keyed by (user, period).
type Repository interface {
	// GetReelsGenerated returns 0 when no row exists for the period.
	GetReelsGenerated(ctx context.Context, userID uint, period string) (int, error)
	// IncrementReels creates the period row if absent, otherwise adds delta.
	IncrementReels(ctx context.Context, userID uint, period string, delta int) error
}
