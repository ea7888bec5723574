package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"togetherly/internal/infrastructure/persistence/models"
	dbutil "togetherly/internal/shared/db"
	"togetherly/internal/shared/logger"
)

type GenerationUsageRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewGenerationUsageRepository(db *gorm.DB, logger logger.Interface) *GenerationUsageRepository {
	return &GenerationUsageRepository{db: db, logger: logger}
}

func (r *GenerationUsageRepository) GetReelsGenerated(ctx context.Context, userID uint, period string) (int, error) {
	var model models.GenerationUsageModel
	err := dbutil.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND period = ?", userID, period).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		r.logger.Errorw("failed to get generation usage", "user_id", userID, "period", period, "error", err)
		return 0, fmt.Errorf("failed to get usage: %w", err)
	}
	return model.ReelsGenerated, nil
}

// IncrementReels is a single upsert so concurrent requests add rather than overwrite.
func (r *GenerationUsageRepository) IncrementReels(ctx context.Context, userID uint, period string, delta int) error {
	now := time.Now().UTC()
	model := models.GenerationUsageModel{
		UserID:         userID,
		Period:         period,
		ReelsGenerated: delta,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := dbutil.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "period"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"reels_generated": gorm.Expr("reels_generated + ?", delta),
			"updated_at":      now,
		}),
	}).Create(&model).Error
	if err != nil {
		r.logger.Errorw("failed to increment generation usage", "user_id", userID, "period", period, "error", err)
		return fmt.Errorf("failed to increment usage: %w", err)
	}
	return nil
}
