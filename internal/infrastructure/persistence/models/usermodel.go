package models

import (
	"time"

	"togetherly/internal/shared/constants"
)

// UserModel represents the database persistence model for users
type UserModel struct {
	ID                     uint    `gorm:"primarykey"`
	Email                  string  `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash           string  `gorm:"not null;size:255"`
	IsPaid                 bool    `gorm:"not null;default:false"`
	PasswordResetTokenHash *string `gorm:"size:64;index:idx_users_reset_token"`
	PasswordResetExpiresAt *time.Time
	LastLoginAt            *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
