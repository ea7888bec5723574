package usecases

import (
	"context"

	"togetherly/internal/domain/subscription"
	apperrors "togetherly/internal/shared/errors"
	"togetherly/internal/shared/logger"
)

type GetReconcileJobUseCase struct {
	jobRepo subscription.ReconcileJobRepository
	logger  logger.Interface
}

func NewGetReconcileJobUseCase(jobRepo subscription.ReconcileJobRepository, logger logger.Interface) *GetReconcileJobUseCase {
	return &GetReconcileJobUseCase{jobRepo: jobRepo, logger: logger}
}

func (uc *GetReconcileJobUseCase) Execute(ctx context.Context, jobID string) (*subscription.ReconcileJob, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		uc.logger.Errorw("failed to load reconcile job", "job_id", jobID, "error", err)
		return nil, apperrors.NewInternalError("failed to load reconcile job").WithCause(err)
	}
	if job == nil {
		return nil, apperrors.NewNotFoundError("reconcile job not found")
	}
	return job, nil
}
