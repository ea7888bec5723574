package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"togetherly/internal/domain/profile"
	"togetherly/internal/infrastructure/persistence/models"
)

type ProfileMapper interface {
	ToEntity(model *models.ProfileModel) (*profile.Profile, error)
	ToModel(entity *profile.Profile) (*models.ProfileModel, error)
}

type profileMapper struct{}

func NewProfileMapper() ProfileMapper {
	return &profileMapper{}
}

func (m *profileMapper) ToEntity(model *models.ProfileModel) (*profile.Profile, error) {
	if model == nil {
		return nil, nil
	}

	f := profile.Fields{
		Industry:      model.Industry,
		Tone:          model.Tone,
		Company:       model.Company,
		IncludeImages: model.IncludeImages,
	}
	lists := []struct {
		name string
		raw  datatypes.JSON
		dst  *[]string
	}{
		{"platforms", model.Platforms, &f.Platforms},
		{"brand_keywords", model.BrandKeywords, &f.BrandKeywords},
		{"niche_keywords", model.NicheKeywords, &f.NicheKeywords},
		{"goals", model.Goals, &f.Goals},
	}
	for _, l := range lists {
		if err := unmarshalJSON(l.raw, l.dst); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", l.name, err)
		}
	}
	if err := unmarshalJSON(model.Details, &f.Details); err != nil {
		return nil, fmt.Errorf("failed to unmarshal details: %w", err)
	}

	return profile.ReconstructProfile(profile.ProfileState{
		ID:        model.ID,
		UserID:    model.UserID,
		Fields:    f,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}), nil
}

func (m *profileMapper) ToModel(entity *profile.Profile) (*models.ProfileModel, error) {
	if entity == nil {
		return nil, nil
	}

	model := &models.ProfileModel{
		ID:            entity.ID(),
		UserID:        entity.UserID(),
		Industry:      entity.Industry(),
		Tone:          entity.Tone(),
		Company:       entity.Company(),
		IncludeImages: entity.IncludeImages(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}

	var err error
	if model.Platforms, err = marshalJSON(entity.Platforms()); err != nil {
		return nil, fmt.Errorf("failed to marshal platforms: %w", err)
	}
	if model.BrandKeywords, err = marshalJSON(entity.BrandKeywords()); err != nil {
		return nil, fmt.Errorf("failed to marshal brand keywords: %w", err)
	}
	if model.NicheKeywords, err = marshalJSON(entity.NicheKeywords()); err != nil {
		return nil, fmt.Errorf("failed to marshal niche keywords: %w", err)
	}
	if model.Goals, err = marshalJSON(entity.Goals()); err != nil {
		return nil, fmt.Errorf("failed to marshal goals: %w", err)
	}
	if model.Details, err = marshalJSON(entity.Details()); err != nil {
		return nil, fmt.Errorf("failed to marshal details: %w", err)
	}
	return model, nil
}
