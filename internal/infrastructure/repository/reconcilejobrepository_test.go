package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"togetherly/internal/domain/feedback"
	"togetherly/internal/domain/subscription"
	"togetherly/internal/shared/logger"
)

func TestReconcileJobRepository_Lifecycle(t *testing.T) {
	repo := NewReconcileJobRepository(newTestDB(t), logger.NewNop())
	ctx := context.Background()

	job := subscription.NewReconcileJob("rcj_test1", "admin@example.com")
	require.NoError(t, repo.Create(ctx, job))

	running, err := repo.GetByID(ctx, "rcj_test1")
	require.NoError(t, err)
	require.NotNil(t, running)
	assert.Equal(t, subscription.JobRunning, running.Status())
	assert.Nil(t, running.Result())

	job.Finish(&subscription.ReconcileResult{
		OK:      true,
		Checked: 1,
		Updated: 1,
		Results: []subscription.ReconcileItem{{SubscriptionID: 1, UserID: 2, ExternalID: "sub_1", Status: "active", IsPaid: true}},
	})
	require.NoError(t, repo.Update(ctx, job))

	finished, err := repo.GetByID(ctx, "rcj_test1")
	require.NoError(t, err)
	assert.Equal(t, subscription.JobFinished, finished.Status())
	require.NotNil(t, finished.Result())
	assert.Equal(t, 1, finished.Result().Updated)
	assert.Equal(t, "sub_1", finished.Result().Results[0].ExternalID)
	assert.NotNil(t, finished.FinishedAt())

	failed := subscription.NewReconcileJob("rcj_test2", "scheduler")
	require.NoError(t, repo.Create(ctx, failed))
	failed.Fail(errors.New("provider down"))
	require.NoError(t, repo.Update(ctx, failed))

	got, err := repo.GetByID(ctx, "rcj_test2")
	require.NoError(t, err)
	assert.Equal(t, "provider down", got.ErrorMessage())

	missing, err := repo.GetByID(ctx, "rcj_missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFeedbackRepository_Create(t *testing.T) {
	repo := NewFeedbackRepository(newTestDB(t), logger.NewNop())

	f, err := feedback.NewFeedback("profile-1", 3, "instagram", 5, "loved it")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), f))
	assert.NotZero(t, f.ID())
}
