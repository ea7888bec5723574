package usecases

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"

	"togetherly/internal/domain/content"
	"togetherly/internal/domain/review"
	apperrors "togetherly/internal/shared/errors"
	"togetherly/internal/shared/logger"
)

const maxReviewLength = 5000

type GenerateReviewResponseCommand struct {
	ReviewText   string
	ReviewerName string
	Tone         string
	CompanyName  string
}

type GenerateReviewResponseResult struct {
	Response  string `json:"response"`
	Sentiment string `json:"sentiment"`
	Tone      string `json:"tone"`
	Enhanced  bool   `json:"enhanced"`
}

type GenerateReviewResponseUseCase struct {
	enhancer       content.TextEnhancer
	enhanceTimeout time.Duration
	newRand        func() *rand.Rand
	logger         logger.Interface
}

func NewGenerateReviewResponseUseCase(enhancer content.TextEnhancer, enhanceTimeout time.Duration, logger logger.Interface) *GenerateReviewResponseUseCase {
	return &GenerateReviewResponseUseCase{
		enhancer:       enhancer,
		enhanceTimeout: enhanceTimeout,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
		logger: logger,
	}
}

func (uc *GenerateReviewResponseUseCase) Execute(ctx context.Context, cmd GenerateReviewResponseCommand) (*GenerateReviewResponseResult, error) {
	text := strings.TrimSpace(cmd.ReviewText)
	if text == "" {
		return nil, apperrors.NewValidationError("review_text is required").WithDetail("field", "review_text")
	}
	if utf8.RuneCountInString(text) > maxReviewLength {
		return nil, apperrors.NewValidationError("review_text is too long").
			WithDetail("field", "review_text").
			WithDetail("max", maxReviewLength)
	}

	tone := review.ParseTone(cmd.Tone)
	draft := review.Compose(uc.newRand(), review.ResponseInput{
		ReviewText:   text,
		ReviewerName: cmd.ReviewerName,
		Tone:         tone,
		CompanyName:  cmd.CompanyName,
	})

	result := &GenerateReviewResponseResult{
		Response:  draft.Text,
		Sentiment: string(draft.Sentiment),
		Tone:      string(tone),
	}
	if out, ok := uc.enhance(ctx, draft.Text, tone); ok {
		result.Response = out
		result.Enhanced = true
	}
	return result, nil
}

func (uc *GenerateReviewResponseUseCase) enhance(ctx context.Context, draft string, tone review.Tone) (string, bool) {
	if uc.enhancer == nil {
		return "", false
	}
	if uc.enhanceTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.enhanceTimeout)
		defer cancel()
	}

	out, err := uc.enhancer.Enhance(ctx, draft, content.EnhanceContext{
		Platform:     "review",
		PlatformHint: "A public reply to a customer review. Keep the sign-off line unchanged.",
		ToneBlurb:    string(tone),
	})
	if err != nil {
		uc.logger.Warnw("review enhancement failed, keeping draft", "error", err)
		return "", false
	}
	if reason := content.RejectEnhancedText(draft, out); reason != "" {
		uc.logger.Debugw("review enhancement discarded", "reason", reason)
		return "", false
	}
	return strings.TrimSpace(out), true
}
