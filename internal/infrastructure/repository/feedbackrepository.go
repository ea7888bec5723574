package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"togetherly/internal/domain/feedback"
	"togetherly/internal/infrastructure/persistence/mappers"
	dbutil "togetherly/internal/shared/db"
	"togetherly/internal/shared/logger"
)

type FeedbackRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewFeedbackRepository(db *gorm.DB, logger logger.Interface) *FeedbackRepository {
	return &FeedbackRepository{db: db, logger: logger}
}

func (r *FeedbackRepository) Create(ctx context.Context, f *feedback.Feedback) error {
	model := mappers.FeedbackToModel(f)
	if err := dbutil.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create feedback", "profile_id", model.ProfileID, "error", err)
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	f.SetID(model.ID)
	return nil
}
