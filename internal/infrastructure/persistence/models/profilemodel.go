package models

import (
	"time"

	"gorm.io/datatypes"

	"togetherly/internal/shared/constants"
)

type ProfileModel struct {
	ID            string `gorm:"primaryKey;size:36"`
	UserID        *uint  `gorm:"index"`
	Industry      string `gorm:"size:100;not null;default:''"`
	Tone          string `gorm:"size:32;not null;default:''"`
	Platforms     datatypes.JSON
	BrandKeywords datatypes.JSON
	NicheKeywords datatypes.JSON
	Goals         datatypes.JSON
	Company       string `gorm:"size:100;not null;default:''"`
	IncludeImages bool   `gorm:"not null;default:false"`
	Details       datatypes.JSON
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ProfileModel) TableName() string {
	return constants.TableProfiles
}
