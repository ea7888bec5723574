// Package usage decides whether a generation request may run and how much of
// the monthly reel quota it consumes.
package usage

import (
	"errors"
	"fmt"

	"togetherly/internal/domain/content"
)

const (
	DefaultReelsQuota = 30
	// LongRangeDays is the first calendar length that counts as long-range.
	LongRangeDays = 7
)

var (
	ErrUnauthenticated = errors.New("sign in required")
	ErrUpgradeRequired = errors.New("paid plan required")
)

// QuotaExceededError reports the quota and the usage that would exceed it.
type QuotaExceededError struct {
	Quota     int
	Used      int
	Requested int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("monthly reel quota exceeded: %d used + %d requested > %d", e.Used, e.Requested, e.Quota)
}

// Viewer is the caller as far as gating is concerned.
type Viewer struct {
	UserID        uint
	Authenticated bool
	Paid          bool
}

// Flags are the feature switches read at request time.
type Flags struct {
	Gate7DayToPaid bool
	// ReelsQuota overrides the gate default when positive.
	ReelsQuota int
}

type Request struct {
	Days      int
	Platforms []string
}

// Decision is the outcome of a successful Authorize.
type Decision struct {
	ReelsRequested int
	Quota          int
}

// NeedsQuota reports whether the request consumes reel quota.
func (d Decision) NeedsQuota() bool {
	return d.ReelsRequested > 0
}

// CheckQuota fails when used plus the requested reels would pass the quota.
func (d Decision) CheckQuota(used int) error {
	if used+d.ReelsRequested > d.Quota {
		return &QuotaExceededError{Quota: d.Quota, Used: used, Requested: d.ReelsRequested}
	}
	return nil
}

type Gate struct {
	defaultQuota int
}

// NewGate builds a gate; a non-positive quota falls back to DefaultReelsQuota.
func NewGate(defaultQuota int) *Gate {
	if defaultQuota <= 0 {
		defaultQuota = DefaultReelsQuota
	}
	return &Gate{defaultQuota: defaultQuota}
}

// Authorize applies the long-range and reel rules that do not need stored
// usage. The quota itself is checked with Decision.CheckQuota.
func (g *Gate) Authorize(req Request, viewer Viewer, flags Flags) (Decision, error) {
	if req.Days >= LongRangeDays && flags.Gate7DayToPaid {
		if err := requirePaid(viewer); err != nil {
			return Decision{}, err
		}
	}

	d := Decision{
		ReelsRequested: ReelsRequested(req),
		Quota:          g.quota(flags),
	}
	if d.NeedsQuota() {
		if err := requirePaid(viewer); err != nil {
			return Decision{}, err
		}
	}
	return d, nil
}

func (g *Gate) quota(flags Flags) int {
	if flags.ReelsQuota > 0 {
		return flags.ReelsQuota
	}
	return g.defaultQuota
}

// ReelsRequested is the reel-capable platform count times the days requested.
func ReelsRequested(req Request) int {
	if req.Days <= 0 {
		return 0
	}
	return content.CountReelPlatforms(req.Platforms) * req.Days
}

func requirePaid(v Viewer) error {
	if !v.Authenticated {
		return ErrUnauthenticated
	}
	if !v.Paid {
		return ErrUpgradeRequired
	}
	return nil
}
