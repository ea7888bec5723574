package profile

import "context"

type Repository interface {
	// Get returns nil, nil when the profile does not exist.
	Get(ctx context.Context, id string) (*Profile, error)
	// Save upserts by id.
	Save(ctx context.Context, p *Profile) error
}
