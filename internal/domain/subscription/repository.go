package subscription

import "context"

// Repository returns nil, nil from lookups when nothing matches.
type Repository interface {
	GetLatestByUserID(ctx context.Context, userID uint) (*Subscription, error)
	GetByExternalID(ctx context.Context, externalID string) (*Subscription, error)
	// Upsert inserts or updates keyed by external id when one is set, by id otherwise.
	Upsert(ctx context.Context, s *Subscription) error
	ListWithExternalID(ctx context.Context) ([]*Subscription, error)
}

type ReconcileJobRepository interface {
	Create(ctx context.Context, job *ReconcileJob) error
	Update(ctx context.Context, job *ReconcileJob) error
	GetByID(ctx context.Context, id string) (*ReconcileJob, error)
}
