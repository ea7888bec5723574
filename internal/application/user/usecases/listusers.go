package usecases

import (
	"context"

	"togetherly/internal/domain/user"
	apperrors "togetherly/internal/shared/errors"
	"togetherly/internal/shared/logger"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type ListUsersQuery struct {
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users    []*user.User
	Total    int64
	Page     int
	PageSize int
	Stats    user.Stats
}

// ListUsersUseCase backs the admin user listing.
type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, q ListUsersQuery) (*ListUsersResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}
	q.PageSize = min(q.PageSize, maxPageSize)

	users, total, err := uc.userRepo.List(ctx, user.ListFilter{Page: q.Page, PageSize: q.PageSize})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, apperrors.NewInternalError("failed to list users").WithCause(err)
	}
	stats, err := uc.userRepo.Stats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count users", "error", err)
		return nil, apperrors.NewInternalError("failed to list users").WithCause(err)
	}

	return &ListUsersResult{
		Users:    users,
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
		Stats:    stats,
	}, nil
}
