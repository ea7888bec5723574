package usecases

import (
	"context"
	"errors"
	"time"

	"togetherly/internal/domain/subscription"
	"togetherly/internal/domain/user"
	apperrors "togetherly/internal/shared/errors"
	"togetherly/internal/shared/goroutine"
	"togetherly/internal/shared/id"
	"togetherly/internal/shared/logger"
)

// Reconcile triggers.
const (
	TriggerAdmin     = "admin"
	TriggerScheduler = "scheduler"
	TriggerCLI       = "cli"
)

type ReconcileCommand struct {
	TriggeredBy string
	// Wait runs the pass inline instead of in the background.
	Wait bool
}

// ReconcileOutcome carries the result of a synchronous pass, or the job id
// to poll for a background one.
type ReconcileOutcome struct {
	JobID  string
	Result *subscription.ReconcileResult
}

type ReconcileSubscriptionsUseCase struct {
	subRepo   subscription.Repository
	userRepo  user.Repository
	jobRepo   subscription.ReconcileJobRepository
	provider  subscription.BillingProvider
	metrics   ReconcileMetrics
	timeout   time.Duration
	logger    logger.Interface
	jobDoneFn func(jobID string)
}

// NewReconcileSubscriptionsUseCase accepts a nil provider; Execute then
// reports billing as not configured.
func NewReconcileSubscriptionsUseCase(
	subRepo subscription.Repository,
	userRepo user.Repository,
	jobRepo subscription.ReconcileJobRepository,
	provider subscription.BillingProvider,
	metrics ReconcileMetrics,
	timeout time.Duration,
	logger logger.Interface,
) *ReconcileSubscriptionsUseCase {
	return &ReconcileSubscriptionsUseCase{
		subRepo:  subRepo,
		userRepo: userRepo,
		jobRepo:  jobRepo,
		provider: provider,
		metrics:  metrics,
		timeout:  timeout,
		logger:   logger,
	}
}

func (uc *ReconcileSubscriptionsUseCase) Execute(ctx context.Context, cmd ReconcileCommand) (*ReconcileOutcome, error) {
	if uc.provider == nil {
		return nil, apperrors.NewNotConfiguredError("billing is not configured")
	}
	if cmd.TriggeredBy == "" {
		cmd.TriggeredBy = TriggerAdmin
	}

	if cmd.Wait {
		result, err := uc.RunOnce(ctx, cmd.TriggeredBy)
		if err != nil {
			return nil, err
		}
		return &ReconcileOutcome{Result: result}, nil
	}

	jobID, err := id.GenerateWithPrefix(id.PrefixReconcileJob, 0)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to start reconcile").WithCause(err)
	}
	job := subscription.NewReconcileJob(jobID, cmd.TriggeredBy)
	if err := uc.jobRepo.Create(ctx, job); err != nil {
		uc.logger.Errorw("failed to create reconcile job", "job_id", jobID, "error", err)
		return nil, apperrors.NewInternalError("failed to start reconcile").WithCause(err)
	}

	goroutine.SafeGo(uc.logger, "reconcile-subscriptions", func() {
		uc.runJob(job)
	})

	uc.logger.Infow("reconcile job started", "job_id", jobID, "triggered_by", cmd.TriggeredBy)
	return &ReconcileOutcome{JobID: jobID}, nil
}

// runJob outlives the request that started it, so it gets its own context.
func (uc *ReconcileSubscriptionsUseCase) runJob(job *subscription.ReconcileJob) {
	ctx := context.Background()
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	result, err := uc.RunOnce(ctx, job.TriggeredBy())
	if err != nil {
		job.Fail(err)
	} else {
		job.Finish(result)
	}

	// the pass context may be spent; saving the outcome must not depend on it
	saveCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := uc.jobRepo.Update(saveCtx, job); err != nil {
		uc.logger.Errorw("failed to save reconcile job", "job_id", job.ID(), "error", err)
	}
	if uc.jobDoneFn != nil {
		uc.jobDoneFn(job.ID())
	}
}

// RunOnce reconciles every subscription that has a provider id. A failing row
// is reported in the result and does not stop the pass.
func (uc *ReconcileSubscriptionsUseCase) RunOnce(ctx context.Context, trigger string) (*subscription.ReconcileResult, error) {
	if uc.provider == nil {
		return nil, apperrors.NewNotConfiguredError("billing is not configured")
	}

	subs, err := uc.subRepo.ListWithExternalID(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions for reconcile", "error", err)
		return nil, apperrors.NewInternalError("failed to list subscriptions").WithCause(err)
	}

	items := make([]subscription.ReconcileItem, len(subs))
	for i, sub := range subs {
		items[i] = uc.reconcileOne(ctx, sub)
	}
	uc.syncPaidFlags(ctx, subs, items)

	result := &subscription.ReconcileResult{Results: items}
	for _, item := range items {
		result.Checked++
		switch {
		case item.Error != "":
			result.Failed++
		case item.Changed:
			result.Updated++
		}
	}
	result.OK = result.Failed == 0

	if uc.metrics != nil {
		uc.metrics.RecordReconcile(trigger, result.OK, result.Updated, result.Failed, result.Checked)
	}
	uc.logger.Infow("subscription reconcile finished",
		"trigger", trigger,
		"checked", result.Checked,
		"updated", result.Updated,
		"failed", result.Failed,
	)
	return result, nil
}

func (uc *ReconcileSubscriptionsUseCase) reconcileOne(ctx context.Context, sub *subscription.Subscription) subscription.ReconcileItem {
	item := subscription.ReconcileItem{
		SubscriptionID: sub.ID(),
		UserID:         sub.UserID(),
		ExternalID:     sub.ExternalID(),
		Status:         sub.Status().String(),
		IsPaid:         sub.IsPaid(),
	}

	remote, err := uc.provider.RetrieveSubscription(ctx, sub.ExternalID())
	if err != nil {
		if errors.Is(err, subscription.ErrRemoteNotFound) {
			item.Error = "subscription not found at billing provider"
		} else {
			item.Error = err.Error()
		}
		uc.logger.Warnw("reconcile: failed to retrieve subscription",
			"subscription_id", sub.ID(),
			"external_id", sub.ExternalID(),
			"error", err,
		)
		return item
	}

	if sub.ApplyRemote(remote) {
		if err := uc.subRepo.Upsert(ctx, sub); err != nil {
			item.Error = "failed to save subscription"
			uc.logger.Errorw("reconcile: failed to save subscription", "subscription_id", sub.ID(), "error", err)
			return item
		}
		item.Changed = true
	}
	item.Status = sub.Status().String()
	item.IsPaid = sub.IsPaid()
	return item
}

// syncPaidFlags sets each user's paid flag from their newest subscription.
// A user whose newest row failed to reconcile keeps the current flag; older
// rows never decide it.
func (uc *ReconcileSubscriptionsUseCase) syncPaidFlags(ctx context.Context, subs []*subscription.Subscription, items []subscription.ReconcileItem) {
	newest := make(map[uint]int, len(subs))
	order := make([]uint, 0, len(subs))
	for i, sub := range subs {
		j, ok := newest[sub.UserID()]
		if !ok {
			order = append(order, sub.UserID())
			newest[sub.UserID()] = i
			continue
		}
		if isNewer(sub, subs[j]) {
			newest[sub.UserID()] = i
		}
	}

	for _, userID := range order {
		i := newest[userID]
		if items[i].Error != "" {
			uc.logger.Warnw("reconcile: paid flag left unchanged",
				"user_id", userID,
				"subscription_id", subs[i].ID(),
			)
			continue
		}
		if err := uc.userRepo.SetPaid(ctx, userID, subs[i].IsPaid()); err != nil {
			items[i].Error = "failed to update user"
			uc.logger.Errorw("reconcile: failed to update user paid flag", "user_id", userID, "error", err)
		}
	}
}

func isNewer(a, b *subscription.Subscription) bool {
	if !a.CreatedAt().Equal(b.CreatedAt()) {
		return a.CreatedAt().After(b.CreatedAt())
	}
	return a.ID() > b.ID()
}
