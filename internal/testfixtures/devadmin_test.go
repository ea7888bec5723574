package testfixtures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "hashed:" + p, nil }

func TestSeedDevAdmin(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepo()

	u, err := SeedDevAdmin(ctx, users, plainHasher{}, " Admin@Togetherly.Local ", DevAdminPassword)
	require.NoError(t, err)
	assert.Equal(t, DevAdminEmail, u.Email())
	assert.True(t, u.IsPaid())
	assert.Equal(t, "hashed:"+DevAdminPassword, u.PasswordHash())

	again, err := SeedDevAdmin(ctx, users, plainHasher{}, DevAdminEmail, "other")
	require.NoError(t, err)
	assert.Equal(t, u.ID(), again.ID())

	stats, err := users.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.PaidUsers)
}
