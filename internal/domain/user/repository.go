package user

import "context"

// Repository returns nil, nil from lookups when no user matches.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByResetTokenHash(ctx context.Context, tokenHash string) (*User, error)
	Update(ctx context.Context, u *User) error
	SetPaid(ctx context.Context, id uint, paid bool) error
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
	Stats(ctx context.Context) (Stats, error)
}

type ListFilter struct {
	Page     int
	PageSize int
}

type Stats struct {
	TotalUsers int64 `json:"total_users"`
	PaidUsers  int64 `json:"paid_users"`
	FreeUsers  int64 `json:"free_users"`
}
