package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"togetherly/internal/domain/user"
	"togetherly/internal/infrastructure/persistence/mappers"
	"togetherly/internal/infrastructure/persistence/models"
	dbutil "togetherly/internal/shared/db"
	sharedErrors "togetherly/internal/shared/errors"
	"togetherly/internal/shared/logger"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

// Create inserts the user and writes the generated id back to the entity.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)

	if err := dbutil.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if sharedErrors.IsDuplicateError(err) {
			return user.ErrEmailTaken
		}
		r.logger.Errorw("failed to create user in database", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	u.SetID(model.ID)
	r.logger.Infow("user created successfully", "id", model.ID)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *UserRepository) GetByResetTokenHash(ctx context.Context, tokenHash string) (*user.User, error) {
	return r.first(ctx, "password_reset_token_hash = ?", tokenHash)
}

func (r *UserRepository) first(ctx context.Context, query string, arg any) (*user.User, error) {
	var model models.UserModel
	if err := dbutil.GetTxFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user", "query", query, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)

	result := dbutil.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"email":                     model.Email,
			"password_hash":             model.PasswordHash,
			"is_paid":                   model.IsPaid,
			"password_reset_token_hash": model.PasswordResetTokenHash,
			"password_reset_expires_at": model.PasswordResetExpiresAt,
			"last_login_at":             model.LastLoginAt,
			"updated_at":                model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SetPaid(ctx context.Context, id uint, paid bool) error {
	result := dbutil.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_paid":    paid,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to set user paid flag", "id", id, "error", result.Error)
		return fmt.Errorf("failed to set paid flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	var total int64
	if err := dbutil.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count users", "error", err)
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var list []*models.UserModel
	if err := dbutil.GetTxFromContext(ctx, r.db).Scopes(dbutil.Paginate(filter.Page, filter.PageSize)).
		Order("id DESC").
		Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list users", "error", err)
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return r.mapper.ToEntities(list), total, nil
}

func (r *UserRepository) Stats(ctx context.Context) (user.Stats, error) {
	var stats user.Stats
	if err := dbutil.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).Count(&stats.TotalUsers).Error; err != nil {
		return user.Stats{}, fmt.Errorf("failed to count users: %w", err)
	}
	if err := dbutil.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Where("is_paid = ?", true).
		Count(&stats.PaidUsers).Error; err != nil {
		return user.Stats{}, fmt.Errorf("failed to count paid users: %w", err)
	}
	stats.FreeUsers = stats.TotalUsers - stats.PaidUsers
	return stats, nil
}
