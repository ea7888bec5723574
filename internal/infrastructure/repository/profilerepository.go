package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"togetherly/internal/domain/profile"
	"togetherly/internal/infrastructure/persistence/mappers"
	"togetherly/internal/infrastructure/persistence/models"
	dbutil "togetherly/internal/shared/db"
	"togetherly/internal/shared/logger"
)

type ProfileRepository struct {
	db     *gorm.DB
	mapper mappers.ProfileMapper
	logger logger.Interface
}

func NewProfileRepository(db *gorm.DB, logger logger.Interface) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		mapper: mappers.NewProfileMapper(),
		logger: logger,
	}
}

func (r *ProfileRepository) Get(ctx context.Context, id string) (*profile.Profile, error) {
	var model models.ProfileModel
	if err := dbutil.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get profile", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map profile model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map profile: %w", err)
	}
	return entity, nil
}

// Save inserts the profile or overwrites every editable column of an existing row.
func (r *ProfileRepository) Save(ctx context.Context, p *profile.Profile) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to map profile entity: %w", err)
	}

	err = dbutil.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"user_id", "industry", "tone", "platforms", "brand_keywords", "niche_keywords",
			"goals", "company", "include_images", "details", "updated_at",
		}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to save profile", "id", model.ID, "error", err)
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}
