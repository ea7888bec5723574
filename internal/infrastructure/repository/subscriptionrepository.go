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

type SubscriptionRepository struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) *SubscriptionRepository {
	return &SubscriptionRepository{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

// GetLatestByUserID returns the most recently updated subscription of the user.
func (r *SubscriptionRepository) GetLatestByUserID(ctx context.Context, userID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	err := dbutil.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("updated_at DESC").Order("id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get latest subscription", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *SubscriptionRepository) GetByExternalID(ctx context.Context, externalID string) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	err := dbutil.GetTxFromContext(ctx, r.db).
		Where("external_subscription_id = ?", externalID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by external id", "external_id", externalID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *SubscriptionRepository) Upsert(ctx context.Context, s *subscription.Subscription) error {
	model := r.mapper.ToModel(s)
	db := dbutil.GetTxFromContext(ctx, r.db)

	if model.ID == 0 && model.ExternalSubscriptionID != nil {
		var existing models.SubscriptionModel
		err := db.Select("id", "created_at").
			Where("external_subscription_id = ?", *model.ExternalSubscriptionID).
			First(&existing).Error
		switch {
		case err == nil:
			model.ID = existing.ID
			model.CreatedAt = existing.CreatedAt
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("failed to look up subscription: %w", err)
		}
	}

	var err error
	if model.ID == 0 {
		err = db.Create(model).Error
	} else {
		err = db.Save(model).Error
	}
	if err != nil {
		r.logger.Errorw("failed to upsert subscription", "user_id", model.UserID, "error", err)
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}

	s.SetID(model.ID)
	return nil
}

func (r *SubscriptionRepository) ListWithExternalID(ctx context.Context) ([]*subscription.Subscription, error) {
	var list []*models.SubscriptionModel
	err := dbutil.GetTxFromContext(ctx, r.db).
		Where("external_subscription_id IS NOT NULL AND external_subscription_id <> ''").
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		r.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return r.mapper.ToEntities(list), nil
}
