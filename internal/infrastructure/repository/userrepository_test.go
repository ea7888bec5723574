package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"togetherly/internal/domain/user"
	"togetherly/internal/infrastructure/auth"
	"togetherly/internal/shared/logger"
	"togetherly/internal/testfixtures"
)

func createUser(t *testing.T, repo *UserRepository, email string) *user.User {
	t.Helper()
	u, err := user.NewUser(email, "hash")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(newTestDB(t), logger.NewNop())
	ctx := context.Background()

	u := createUser(t, repo, "Owner@Example.com")
	assert.NotZero(t, u.ID())

	byEmail, err := repo.GetByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, u.ID(), byEmail.ID())

	missing, err := repo.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t), logger.NewNop())
	createUser(t, repo, "dup@example.com")

	u, err := user.NewUser("dup@example.com", "hash")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(context.Background(), u), user.ErrEmailTaken)
}

func TestUserRepository_UpdateResetToken(t *testing.T) {
	repo := NewUserRepository(newTestDB(t), logger.NewNop())
	ctx := context.Background()
	u := createUser(t, repo, "reset@example.com")

	u.StartPasswordReset("tokenhash", time.Now().Add(30*time.Minute))
	require.NoError(t, repo.Update(ctx, u))

	found, err := repo.GetByResetTokenHash(ctx, "tokenhash")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, u.ID(), found.ID())

	require.NoError(t, found.CompletePasswordReset("tokenhash", "newhash", time.Now()))
	require.NoError(t, repo.Update(ctx, found))

	gone, err := repo.GetByResetTokenHash(ctx, "tokenhash")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestUserRepository_SetPaidListAndStats(t *testing.T) {
	repo := NewUserRepository(newTestDB(t), logger.NewNop())
	ctx := context.Background()

	a := createUser(t, repo, "a@example.com")
	createUser(t, repo, "b@example.com")
	createUser(t, repo, "c@example.com")

	require.NoError(t, repo.SetPaid(ctx, a.ID(), true))
	assert.ErrorIs(t, repo.SetPaid(ctx, 4242, true), user.ErrUserNotFound)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.Stats{TotalUsers: 3, PaidUsers: 1, FreeUsers: 2}, stats)

	page, total, err := repo.List(ctx, user.ListFilter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 2)
	assert.Equal(t, "c@example.com", page[0].Email())
}

func TestUserRepository_SeedDevAdmin(t *testing.T) {
	repo := NewUserRepository(newTestDB(t), logger.NewNop())
	hasher := auth.NewBcryptPasswordHasher(4)
	ctx := context.Background()

	admin, err := testfixtures.SeedDevAdmin(ctx, repo, hasher, testfixtures.DevAdminEmail, testfixtures.DevAdminPassword)
	require.NoError(t, err)
	assert.True(t, admin.IsPaid())

	stored, err := repo.GetByEmail(ctx, testfixtures.DevAdminEmail)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.IsPaid())
	assert.NoError(t, hasher.Verify(testfixtures.DevAdminPassword, stored.PasswordHash()))

	again, err := testfixtures.SeedDevAdmin(ctx, repo, hasher, testfixtures.DevAdminEmail, "ignored")
	require.NoError(t, err)
	assert.Equal(t, admin.ID(), again.ID())
}
