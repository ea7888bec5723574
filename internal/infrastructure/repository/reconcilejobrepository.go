package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"togetherly/internal/domain/subscription"
	"togetherly/internal/infrastructure/persistence/mappers"
	"togetherly/internal/infrastructure/persistence/models"
	dbutil "togetherly/internal/shared/db"
	"togetherly/internal/shared/logger"
)

type ReconcileJobRepository struct {
	db     *gorm.DB
	mapper mappers.ReconcileJobMapper
	logger logger.Interface
}

func NewReconcileJobRepository(db *gorm.DB, logger logger.Interface) *ReconcileJobRepository {
	return &ReconcileJobRepository{
		db:     db,
		mapper: mappers.NewReconcileJobMapper(),
		logger: logger,
	}
}

func (r *ReconcileJobRepository) Create(ctx context.Context, job *subscription.ReconcileJob) error {
	model, err := r.mapper.ToModel(job)
	if err != nil {
		return err
	}
	if err := dbutil.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create reconcile job", "id", model.ID, "error", err)
		return fmt.Errorf("failed to create reconcile job: %w", err)
	}
	return nil
}

func (r *ReconcileJobRepository) Update(ctx context.Context, job *subscription.ReconcileJob) error {
	model, err := r.mapper.ToModel(job)
	if err != nil {
		return err
	}
	result := dbutil.GetTxFromContext(ctx, r.db).Model(&models.ReconcileJobModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":      model.Status,
			"result":      model.Result,
			"error":       model.Error,
			"finished_at": model.FinishedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update reconcile job", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update reconcile job: %w", result.Error)
	}
	return nil
}

func (r *ReconcileJobRepository) GetByID(ctx context.Context, id string) (*subscription.ReconcileJob, error) {
	var model models.ReconcileJobModel
	if err := dbutil.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get reconcile job", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get reconcile job: %w", err)
	}
	return r.mapper.ToEntity(&model)
}
