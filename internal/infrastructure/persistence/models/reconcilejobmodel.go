package models

import (
	"time"

	"gorm.io/datatypes"

	"togetherly/internal/shared/constants"
)

type ReconcileJobModel struct {
	ID          string `gorm:"primaryKey;size:32"`
	Status      string `gorm:"size:16;not null"`
	TriggeredBy string `gorm:"size:255;not null;default:''"`
	Result      datatypes.JSON
	Error       *string
	StartedAt   time.Time
	FinishedAt  *time.Time
}

func (ReconcileJobModel) TableName() string {
	return constants.TableReconcileJobs
}
