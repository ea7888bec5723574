package mappers

import (
	"togetherly/internal/domain/subscription"
	"togetherly/internal/infrastructure/persistence/models"
	"togetherly/internal/shared/mapper"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) *subscription.Subscription
	ToModel(entity *subscription.Subscription) *models.SubscriptionModel
	ToEntities(models []*models.SubscriptionModel) []*subscription.Subscription
}

type subscriptionMapper struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &subscriptionMapper{}
}

func (m *subscriptionMapper) ToEntity(model *models.SubscriptionModel) *subscription.Subscription {
	if model == nil {
		return nil
	}
	externalID := ""
	if model.ExternalSubscriptionID != nil {
		externalID = *model.ExternalSubscriptionID
	}
	return subscription.ReconstructSubscription(subscription.SubscriptionState{
		ID:               model.ID,
		UserID:           model.UserID,
		ExternalID:       externalID,
		CustomerID:       model.ExternalCustomerID,
		Status:           subscription.ParseStatus(model.Status),
		CurrentPeriodEnd: model.CurrentPeriodEnd,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	})
}

func (m *subscriptionMapper) ToModel(entity *subscription.Subscription) *models.SubscriptionModel {
	if entity == nil {
		return nil
	}
	var externalID *string
	if id := entity.ExternalID(); id != "" {
		externalID = &id
	}
	return &models.SubscriptionModel{
		ID:                     entity.ID(),
		UserID:                 entity.UserID(),
		ExternalSubscriptionID: externalID,
		ExternalCustomerID:     entity.CustomerID(),
		Status:                 entity.Status().String(),
		CurrentPeriodEnd:       entity.CurrentPeriodEnd(),
		CreatedAt:              entity.CreatedAt(),
		UpdatedAt:              entity.UpdatedAt(),
	}
}

func (m *subscriptionMapper) ToEntities(list []*models.SubscriptionModel) []*subscription.Subscription {
	return mapper.MapSlice(list, m.ToEntity)
}
