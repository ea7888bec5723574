package models

import (
	"time"

	"togetherly/internal/shared/constants"
)

// SubscriptionModel mirrors one billing-provider subscription. A NULL
// external id means the row was never linked to the provider.
type SubscriptionModel struct {
	ID                     uint    `gorm:"primarykey"`
	UserID                 uint    `gorm:"not null;index"`
	ExternalSubscriptionID *string `gorm:"size:255;uniqueIndex:idx_subscriptions_external_id"`
	ExternalCustomerID     string  `gorm:"size:255;not null;default:''"`
	Status                 string  `gorm:"size:32;not null"`
	CurrentPeriodEnd       *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
