// Package biztime holds the calendar rules used for quota periods and
// "today" defaults. Storage is always UTC; the business location only decides
// where a day or month starts.
package biztime

import (
	"fmt"
	"math"
	"sync"
	"time"
)

const (
	DefaultTimezone = "UTC"
	PeriodLayout    = "2006-01"
)

var (
	mu       sync.RWMutex
	location = time.UTC
)

// Init sets the business location. An empty tz keeps UTC.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", tz, err)
	}
	mu.Lock()
	location = loc
	mu.Unlock()
	return nil
}

func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	return location
}

func NowUTC() time.Time {
	return time.Now().UTC()
}

// Now is the current time in the business location.
func Now() time.Time {
	return time.Now().In(Location())
}

// Period is the quota accounting window containing t, e.g. "2025-03".
func Period(t time.Time) string {
	return t.In(Location()).Format(PeriodLayout)
}

func StartOfMonth(t time.Time) time.Time {
	t = t.In(Location())
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DaysUntil counts whole days from now until t, rounding up. Past times give 0.
func DaysUntil(now, t time.Time) int {
	d := t.Sub(now)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours() / 24))
}
