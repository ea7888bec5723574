package handlers

import (
	"context"

	"togetherly/internal/application/content/usecases"
)

// Use case interfaces for ContentHandler.

type generatePostsUseCase interface {
	Execute(ctx context.Context, cmd usecases.GeneratePostsCommand) (*usecases.GeneratePostsResult, error)
}

type exportCalendarUseCase interface {
	Execute(ctx context.Context, cmd usecases.ExportCalendarCommand) (*usecases.ExportCalendarResult, error)
}

type getContentFlagsUseCase interface {
	Execute(ctx context.Context) *usecases.ContentFlagsResult
}

type generateReviewResponseUseCase interface {
	Execute(ctx context.Context, cmd usecases.GenerateReviewResponseCommand) (*usecases.GenerateReviewResponseResult, error)
}

type submitFeedbackUseCase interface {
	Execute(ctx context.Context, cmd usecases.SubmitFeedbackCommand) (uint, error)
}
