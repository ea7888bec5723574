package models

import (
	"time"

	"togetherly/internal/shared/constants"
)

type FeedbackModel struct {
	ID        uint   `gorm:"primarykey"`
	ProfileID string `gorm:"size:36;not null;index"`
	PostDay   int    `gorm:"not null;default:0"`
	Platform  string `gorm:"size:32;not null;default:''"`
	Rating    int    `gorm:"not null"`
	Note      string
	CreatedAt time.Time
}

func (FeedbackModel) TableName() string {
	return constants.TableFeedback
}
