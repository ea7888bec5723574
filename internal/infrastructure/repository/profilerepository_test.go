package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"togetherly/internal/domain/profile"
	"togetherly/internal/shared/logger"
)

func TestProfileRepository_SaveAndGet(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t), logger.NewNop())
	ctx := context.Background()

	owner := uint(5)
	p, err := profile.NewProfile(&owner, profile.Fields{
		Industry:      "Bakery",
		Tone:          "friendly",
		Platforms:     []string{"instagram", "twitter"},
		BrandKeywords: []string{"sourdough"},
		Company:       "  acme corp  ",
		Details:       map[string]any{"reel_length_seconds": 45},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.Get(ctx, p.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Acme Corp", got.Company())
	assert.Equal(t, []string{"instagram", "twitter"}, got.Platforms())
	assert.Nil(t, got.Goals())
	assert.Equal(t, float64(45), got.Details()["reel_length_seconds"])
	require.NotNil(t, got.UserID())
	assert.Equal(t, owner, *got.UserID())

	f := got.Fields()
	f.Industry = "Cafe"
	require.NoError(t, got.Update(f, time.Now().UTC()))
	require.NoError(t, repo.Save(ctx, got))

	updated, err := repo.Get(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, "Cafe", updated.Industry())

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
