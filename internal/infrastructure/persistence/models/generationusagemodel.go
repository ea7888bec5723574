package models

import (
	"time"

	"togetherly/internal/shared/constants"
)

// GenerationUsageModel counts reels per user per calendar month ("2006-01").
type GenerationUsageModel struct {
	ID             uint   `gorm:"primarykey"`
	UserID         uint   `gorm:"not null;uniqueIndex:idx_generation_usage_user_period"`
	Period         string `gorm:"size:7;not null;uniqueIndex:idx_generation_usage_user_period"`
	ReelsGenerated int    `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (GenerationUsageModel) TableName() string {
	return constants.TableGenerationUsage
}
