package scheduler

import (
	"context"
	"sync"
	"time"

	"togetherly/internal/domain/subscription"
	"togetherly/internal/shared/logger"
)

const schedulerTrigger = "scheduler"

// Reconciler is implemented by the reconcile subscriptions use case.
type Reconciler interface {
	RunOnce(ctx context.Context, trigger string) (*subscription.ReconcileResult, error)
}

// ReconcileScheduler runs a subscription reconcile pass on a fixed interval.
// The first pass waits one full interval so a restart loop cannot hammer the
// billing provider.
type ReconcileScheduler struct {
	reconciler  Reconciler
	interval    time.Duration
	passTimeout time.Duration
	logger      logger.Interface
	stopChan    chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup
}

func NewReconcileScheduler(reconciler Reconciler, interval, passTimeout time.Duration, logger logger.Interface) *ReconcileScheduler {
	return &ReconcileScheduler{
		reconciler:  reconciler,
		interval:    interval,
		passTimeout: passTimeout,
		logger:      logger,
		stopChan:    make(chan struct{}),
	}
}

// Start is a no-op on a nil scheduler.
func (s *ReconcileScheduler) Start(ctx context.Context) {
	if s == nil {
		return
	}
	if s.interval <= 0 {
		s.logger.Infow("reconcile scheduler disabled")
		return
	}
	s.logger.Infow("starting reconcile scheduler", "interval", s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	}()
}

// Stop waits for an in-flight pass to finish.
func (s *ReconcileScheduler) Stop() {
	if s == nil {
		return
	}
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping reconcile scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("reconcile scheduler stopped")
	})
}

func (s *ReconcileScheduler) runLoop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("reconcile scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.runPass(ctx)
		}
	}
}

func (s *ReconcileScheduler) runPass(ctx context.Context) {
	if s.passTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.passTimeout)
		defer cancel()
	}

	startTime := time.Now()
	result, err := s.reconciler.RunOnce(ctx, schedulerTrigger)
	if err != nil {
		s.logger.Errorw("scheduled reconcile failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if result.Updated > 0 || result.Failed > 0 {
		s.logger.Infow("scheduled reconcile applied changes",
			"updated", result.Updated,
			"failed", result.Failed,
			"duration", time.Since(startTime),
		)
	} else {
		s.logger.Debugw("scheduled reconcile found nothing to change",
			"checked", result.Checked,
			"duration", time.Since(startTime),
		)
	}
}
