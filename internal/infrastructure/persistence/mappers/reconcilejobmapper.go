package mappers

import (
	"fmt"

	"togetherly/internal/domain/subscription"
	"togetherly/internal/infrastructure/persistence/models"
)

type ReconcileJobMapper interface {
	ToEntity(model *models.ReconcileJobModel) (*subscription.ReconcileJob, error)
	ToModel(entity *subscription.ReconcileJob) (*models.ReconcileJobModel, error)
}

type reconcileJobMapper struct{}

func NewReconcileJobMapper() ReconcileJobMapper {
	return &reconcileJobMapper{}
}

func (m *reconcileJobMapper) ToEntity(model *models.ReconcileJobModel) (*subscription.ReconcileJob, error) {
	if model == nil {
		return nil, nil
	}

	var result *subscription.ReconcileResult
	if len(model.Result) > 0 && string(model.Result) != "null" {
		result = &subscription.ReconcileResult{}
		if err := unmarshalJSON(model.Result, result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal reconcile result: %w", err)
		}
	}

	errMessage := ""
	if model.Error != nil {
		errMessage = *model.Error
	}

	return subscription.ReconstructReconcileJob(subscription.ReconcileJobState{
		ID:          model.ID,
		Status:      subscription.JobStatus(model.Status),
		TriggeredBy: model.TriggeredBy,
		Result:      result,
		Error:       errMessage,
		StartedAt:   model.StartedAt,
		FinishedAt:  model.FinishedAt,
	}), nil
}

func (m *reconcileJobMapper) ToModel(entity *subscription.ReconcileJob) (*models.ReconcileJobModel, error) {
	if entity == nil {
		return nil, nil
	}

	model := &models.ReconcileJobModel{
		ID:          entity.ID(),
		Status:      string(entity.Status()),
		TriggeredBy: entity.TriggeredBy(),
		StartedAt:   entity.StartedAt(),
		FinishedAt:  entity.FinishedAt(),
	}
	if r := entity.Result(); r != nil {
		data, err := marshalJSON(r)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal reconcile result: %w", err)
		}
		model.Result = data
	}
	if msg := entity.ErrorMessage(); msg != "" {
		model.Error = &msg
	}
	return model, nil
}
