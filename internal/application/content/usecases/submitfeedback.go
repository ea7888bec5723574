package usecases

import (
	"context"
	"errors"

	"togetherly/internal/domain/feedback"
	apperrors "togetherly/internal/shared/errors"
	"togetherly/internal/shared/logger"
)

type SubmitFeedbackCommand struct {
	ProfileID string
	PostDay   int
	Platform  string
	Rating    int
	Note      string
}

type SubmitFeedbackUseCase struct {
	repo   feedback.Repository
	logger logger.Interface
}

func NewSubmitFeedbackUseCase(repo feedback.Repository, logger logger.Interface) *SubmitFeedbackUseCase {
	return &SubmitFeedbackUseCase{repo: repo, logger: logger}
}

func (uc *SubmitFeedbackUseCase) Execute(ctx context.Context, cmd SubmitFeedbackCommand) (uint, error) {
	f, err := feedback.NewFeedback(cmd.ProfileID, cmd.PostDay, cmd.Platform, cmd.Rating, cmd.Note)
	if err != nil {
		switch {
		case errors.Is(err, feedback.ErrProfileRequired):
			return 0, apperrors.NewValidationError(err.Error()).WithDetail("field", "profile_id")
		case errors.Is(err, feedback.ErrInvalidRating):
			return 0, apperrors.NewValidationError(err.Error()).WithDetail("field", "rating")
		}
		return 0, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, f); err != nil {
		uc.logger.Errorw("failed to save feedback", "profile_id", f.ProfileID(), "error", err)
		return 0, apperrors.NewInternalError("failed to save feedback").WithCause(err)
	}
	uc.logger.Infow("feedback recorded", "feedback_id", f.ID(), "profile_id", f.ProfileID(), "rating", f.Rating())
	return f.ID(), nil
}
