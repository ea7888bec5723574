package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// MemoryRateLimiter is the single-process fallback used when redis is off.
// Each key gets a token bucket per configured window.
type MemoryRateLimiter struct {
	config   RateLimitConfig
	mu       sync.Mutex
	limiters map[string][]*rate.Limiter
	lastSeen map[string]time.Time
	idleTTL  time.Duration
}

func NewMemoryRateLimiter(config RateLimitConfig) *MemoryRateLimiter {
	return &MemoryRateLimiter{
		config:   config,
		limiters: make(map[string][]*rate.Limiter),
		lastSeen: make(map[string]time.Time),
		idleTTL:  2 * time.Hour,
	}
}

func (l *MemoryRateLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.evictIdle(now)

	buckets, ok := l.limiters[key]
	if !ok {
		for _, w := range l.config.windows() {
			if w.limit <= 0 {
				continue
			}
			buckets = append(buckets, rate.NewLimiter(rate.Every(w.duration/time.Duration(w.limit)), w.limit))
		}
		l.limiters[key] = buckets
	}
	l.lastSeen[key] = now

	// Reserve from every bucket so one window cannot be drained while another refuses.
	reservations := make([]*rate.Reservation, 0, len(buckets))
	for _, b := range buckets {
		r := b.ReserveN(now, 1)
		if !r.OK() || r.DelayFrom(now) > 0 {
			r.CancelAt(now)
			for _, prev := range reservations {
				prev.CancelAt(now)
			}
			return false, nil
		}
		reservations = append(reservations, r)
	}
	return true, nil
}

func (l *MemoryRateLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.limiters, key)
	delete(l.lastSeen, key)
	return nil
}

func (l *MemoryRateLimiter) evictIdle(now time.Time) {
	for key, seen := range l.lastSeen {
		if now.Sub(seen) > l.idleTTL {
			delete(l.limiters, key)
			delete(l.lastSeen, key)
		}
	}
}
