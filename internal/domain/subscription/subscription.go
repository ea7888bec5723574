package subscription

import (
	"time"
)

// Subscription is the local copy of a billing provider subscription.
type Subscription struct {
	id               uint
	userID           uint
	externalID       string
	customerID       string
	status           Status
	currentPeriodEnd *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

func NewSubscription(userID uint, externalID, customerID string, status Status, currentPeriodEnd *time.Time) (*Subscription, error) {
	if userID == 0 {
		return nil, ErrUserRequired
	}
	now := time.Now().UTC()
	return &Subscription{
		userID:           userID,
		externalID:       externalID,
		customerID:       customerID,
		status:           status,
		currentPeriodEnd: currentPeriodEnd,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

type SubscriptionState struct {
	ID               uint
	UserID           uint
	ExternalID       string
	CustomerID       string
	Status           Status
	CurrentPeriodEnd *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func ReconstructSubscription(s SubscriptionState) *Subscription {
	return &Subscription{
		id:               s.ID,
		userID:           s.UserID,
		externalID:       s.ExternalID,
		customerID:       s.CustomerID,
		status:           s.Status,
		currentPeriodEnd: s.CurrentPeriodEnd,
		createdAt:        s.CreatedAt,
		updatedAt:        s.UpdatedAt,
	}
}

func (s *Subscription) ID() uint                     { return s.id }
func (s *Subscription) UserID() uint                 { return s.userID }
func (s *Subscription) ExternalID() string           { return s.externalID }
func (s *Subscription) CustomerID() string           { return s.customerID }
func (s *Subscription) Status() Status               { return s.status }
func (s *Subscription) CurrentPeriodEnd() *time.Time { return s.currentPeriodEnd }
func (s *Subscription) CreatedAt() time.Time         { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time         { return s.updatedAt }

func (s *Subscription) SetID(id uint) {
	s.id = id
}

// IsPaid derives the owning user's paid flag from this subscription.
func (s *Subscription) IsPaid() bool {
	return s.status.GrantsPaidAccess()
}

// ApplyRemote copies the provider's view onto the subscription and reports
// whether anything changed.
func (s *Subscription) ApplyRemote(remote *RemoteSubscription) bool {
	changed := false
	if remote.Status != "" && remote.Status != s.status {
		s.status = remote.Status
		changed = true
	}
	if !sameTime(s.currentPeriodEnd, remote.CurrentPeriodEnd) {
		s.currentPeriodEnd = remote.CurrentPeriodEnd
		changed = true
	}
	if remote.CustomerID != "" && remote.CustomerID != s.customerID {
		s.customerID = remote.CustomerID
		changed = true
	}
	if changed {
		s.updatedAt = time.Now().UTC()
	}
	return changed
}

// Cancel marks the subscription canceled locally.
func (s *Subscription) Cancel() {
	s.status = StatusCanceled
	s.updatedAt = time.Now().UTC()
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
