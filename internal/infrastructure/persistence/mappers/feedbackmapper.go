package mappers

import (
	"togetherly/internal/domain/feedback"
	"togetherly/internal/infrastructure/persistence/models"
)

func FeedbackToModel(f *feedback.Feedback) *models.FeedbackModel {
	if f == nil {
		return nil
	}
	return &models.FeedbackModel{
		ID:        f.ID(),
		ProfileID: f.ProfileID(),
		PostDay:   f.PostDay(),
		Platform:  f.Platform(),
		Rating:    f.Rating(),
		Note:      f.Note(),
		CreatedAt: f.CreatedAt(),
	}
}
