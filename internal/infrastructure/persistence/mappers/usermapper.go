package mappers

import (
	"togetherly/internal/domain/user"
	"togetherly/internal/infrastructure/persistence/models"
	"togetherly/internal/shared/mapper"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) *user.User
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) []*user.User
}

type userMapper struct{}

func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToEntity(model *models.UserModel) *user.User {
	if model == nil {
		return nil
	}
	return user.ReconstructUser(user.UserState{
		ID:                     model.ID,
		Email:                  model.Email,
		PasswordHash:           model.PasswordHash,
		IsPaid:                 model.IsPaid,
		PasswordResetTokenHash: model.PasswordResetTokenHash,
		PasswordResetExpiresAt: model.PasswordResetExpiresAt,
		LastLoginAt:            model.LastLoginAt,
		CreatedAt:              model.CreatedAt,
		UpdatedAt:              model.UpdatedAt,
	})
}

func (m *userMapper) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:                     entity.ID(),
		Email:                  entity.Email(),
		PasswordHash:           entity.PasswordHash(),
		IsPaid:                 entity.IsPaid(),
		PasswordResetTokenHash: entity.PasswordResetTokenHash(),
		PasswordResetExpiresAt: entity.PasswordResetExpiresAt(),
		LastLoginAt:            entity.LastLoginAt(),
		CreatedAt:              entity.CreatedAt(),
		UpdatedAt:              entity.UpdatedAt(),
	}
}

func (m *userMapper) ToEntities(list []*models.UserModel) []*user.User {
	return mapper.MapSlice(list, m.ToEntity)
}
