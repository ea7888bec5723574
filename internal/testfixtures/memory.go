// Package testfixtures provides in-memory repositories and seed helpers for
// tests and local development. Nothing here is wired into the server.
package testfixtures

import (
	"context"
	"sort"
	"sync"
	"time"

	"togetherly/internal/domain/feedback"
	"togetherly/internal/domain/profile"
	"togetherly/internal/domain/subscription"
	"togetherly/internal/domain/user"
)

// UserRepo implements user.Repository. Err, when set, is returned by every call.
type UserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*user.User
	Err    error
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: map[uint]*user.User{}}
}

func (r *UserRepo) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for _, existing := range r.users {
		if existing.Email() == u.Email() {
			return user.ErrEmailTaken
		}
	}
	r.nextID++
	u.SetID(r.nextID)
	r.users[u.ID()] = u
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id uint) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	return r.users[id], nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) GetByResetTokenHash(_ context.Context, tokenHash string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.users {
		if h := u.PasswordResetTokenHash(); h != nil && *h == tokenHash {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.users[u.ID()]; !ok {
		return user.ErrUserNotFound
	}
	r.users[u.ID()] = u
	return nil
}

func (r *UserRepo) SetPaid(_ context.Context, id uint, paid bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.SetPaid(paid)
	return nil
}

func (r *UserRepo) List(_ context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, 0, r.Err
	}
	all := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID() > all[j].ID() })

	start := (filter.Page - 1) * filter.PageSize
	if filter.Page < 1 || filter.PageSize < 1 {
		return all, int64(len(all)), nil
	}
	if start > len(all) {
		start = len(all)
	}
	end := min(start+filter.PageSize, len(all))
	return all[start:end], int64(len(all)), nil
}

func (r *UserRepo) Stats(_ context.Context) (user.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return user.Stats{}, r.Err
	}
	var s user.Stats
	for _, u := range r.users {
		s.TotalUsers++
		if u.IsPaid() {
			s.PaidUsers++
		}
	}
	s.FreeUsers = s.TotalUsers - s.PaidUsers
	return s, nil
}

// ProfileRepo implements profile.Repository.
type ProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*profile.Profile
	Err      error
}

func NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{profiles: map[string]*profile.Profile{}}
}

func (r *ProfileRepo) Get(_ context.Context, id string) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	return r.profiles[id], nil
}

func (r *ProfileRepo) Save(_ context.Context, p *profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.profiles[p.ID()] = p
	return nil
}

// UsageRepo implements usage.Repository.
type UsageRepo struct {
	mu           sync.Mutex
	counts       map[usageKey]int
	Err          error
	IncrementErr error
	Calls        int
}

type usageKey struct {
	userID uint
	period string
}

func NewUsageRepo() *UsageRepo {
	return &UsageRepo{counts: map[usageKey]int{}}
}

// Set seeds a counter.
func (r *UsageRepo) Set(userID uint, period string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[usageKey{userID, period}] = n
}

func (r *UsageRepo) Get(userID uint, period string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[usageKey{userID, period}]
}

func (r *UsageRepo) GetReelsGenerated(_ context.Context, userID uint, period string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	return r.counts[usageKey{userID, period}], nil
}

func (r *UsageRepo) IncrementReels(_ context.Context, userID uint, period string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	if r.IncrementErr != nil {
		return r.IncrementErr
	}
	r.counts[usageKey{userID, period}] += delta
	return nil
}

// SubscriptionRepo implements subscription.Repository.
type SubscriptionRepo struct {
	mu     sync.Mutex
	nextID uint
	subs   map[uint]*subscription.Subscription
	Err    error
}

func NewSubscriptionRepo() *SubscriptionRepo {
	return &SubscriptionRepo{subs: map[uint]*subscription.Subscription{}}
}

func (r *SubscriptionRepo) GetLatestByUserID(_ context.Context, userID uint) (*subscription.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var latest *subscription.Subscription
	for _, s := range r.subs {
		if s.UserID() != userID {
			continue
		}
		if latest == nil || s.UpdatedAt().After(latest.UpdatedAt()) ||
			(s.UpdatedAt().Equal(latest.UpdatedAt()) && s.ID() > latest.ID()) {
			latest = s
		}
	}
	return latest, nil
}

func (r *SubscriptionRepo) GetByExternalID(_ context.Context, externalID string) (*subscription.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, s := range r.subs {
		if externalID != "" && s.ExternalID() == externalID {
			return s, nil
		}
	}
	return nil, nil
}

func (r *SubscriptionRepo) Upsert(_ context.Context, s *subscription.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if s.ID() == 0 && s.ExternalID() != "" {
		for id, existing := range r.subs {
			if existing.ExternalID() == s.ExternalID() {
				s.SetID(id)
				break
			}
		}
	}
	if s.ID() == 0 {
		r.nextID++
		s.SetID(r.nextID)
	}
	r.subs[s.ID()] = s
	return nil
}

func (r *SubscriptionRepo) ListWithExternalID(_ context.Context) ([]*subscription.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []*subscription.Subscription
	for _, s := range r.subs {
		if s.ExternalID() != "" {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

// ReconcileJobRepo implements subscription.ReconcileJobRepository.
type ReconcileJobRepo struct {
	mu   sync.Mutex
	jobs map[string]subscription.ReconcileJobState
	Err  error
}

func NewReconcileJobRepo() *ReconcileJobRepo {
	return &ReconcileJobRepo{jobs: map[string]subscription.ReconcileJobState{}}
}

func (r *ReconcileJobRepo) Create(_ context.Context, job *subscription.ReconcileJob) error {
	return r.put(job)
}

func (r *ReconcileJobRepo) Update(_ context.Context, job *subscription.ReconcileJob) error {
	return r.put(job)
}

// put stores a snapshot so later mutations of job are not visible until saved.
func (r *ReconcileJobRepo) put(job *subscription.ReconcileJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.jobs[job.ID()] = subscription.ReconcileJobState{
		ID:          job.ID(),
		Status:      job.Status(),
		TriggeredBy: job.TriggeredBy(),
		Result:      job.Result(),
		Error:       job.ErrorMessage(),
		StartedAt:   job.StartedAt(),
		FinishedAt:  job.FinishedAt(),
	}
	return nil
}

func (r *ReconcileJobRepo) GetByID(_ context.Context, id string) (*subscription.ReconcileJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	state, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	return subscription.ReconstructReconcileJob(state), nil
}

// FeedbackRepo implements feedback.Repository.
type FeedbackRepo struct {
	mu    sync.Mutex
	Items []*feedback.Feedback
	Err   error
}

func (r *FeedbackRepo) Create(_ context.Context, f *feedback.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	f.SetID(uint(len(r.Items) + 1))
	r.Items = append(r.Items, f)
	return nil
}

// Flags is a fixed feature flag source.
type Flags map[string]any

func (f Flags) Bool(key string, def bool) bool {
	if v, ok := f[key].(bool); ok {
		return v
	}
	return def
}

func (f Flags) Int(key string, def int) int {
	if v, ok := f[key].(int); ok {
		return v
	}
	return def
}

// FixedClock returns a clock stuck at t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
