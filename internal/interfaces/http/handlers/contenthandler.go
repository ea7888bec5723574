package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"togetherly/internal/application/content/usecases"
	"togetherly/internal/domain/content"
	"togetherly/internal/shared/logger"
	"togetherly/internal/shared/utils"
)

type ContentHandler struct {
	generateUseCase generatePostsUseCase
	exportUseCase   exportCalendarUseCase
	flagsUseCase    getContentFlagsUseCase
	reviewUseCase   generateReviewResponseUseCase
	feedbackUseCase submitFeedbackUseCase
	logger          logger.Interface
}

func NewContentHandler(
	generateUC generatePostsUseCase,
	exportUC exportCalendarUseCase,
	flagsUC getContentFlagsUseCase,
	reviewUC generateReviewResponseUseCase,
	feedbackUC submitFeedbackUseCase,
	logger logger.Interface,
) *ContentHandler {
	return &ContentHandler{
		generateUseCase: generateUC,
		exportUseCase:   exportUC,
		flagsUseCase:    flagsUC,
		reviewUseCase:   reviewUC,
		feedbackUseCase: feedbackUC,
		logger:          logger,
	}
}

// GenerateRequest fields left empty fall back to the stored profile.
type GenerateRequest struct {
	ProfileID     string         `json:"profile_id"`
	Days          *int           `json:"days" binding:"omitempty,min=0"`
	StartDate     string         `json:"start_date"`
	Industry      string         `json:"industry" binding:"max=100"`
	Tone          string         `json:"tone" binding:"max=50"`
	Platforms     []string       `json:"platforms" binding:"max=10"`
	BrandKeywords []string       `json:"brand_keywords" binding:"max=50"`
	NicheKeywords []string       `json:"niche_keywords" binding:"max=50"`
	Goals         []string       `json:"goals" binding:"max=20"`
	Details       map[string]any `json:"details"`
	IncludeImages *bool          `json:"include_images"`
	Company       string         `json:"company"`
}

type GenerateResponse struct {
	Count     int            `json:"count"`
	Posts     []content.Post `json:"posts"`
	ProfileID string         `json:"profile_id,omitempty"`
}

type ExportRequest struct {
	Format string         `json:"format"`
	Title  string         `json:"title" binding:"max=200"`
	Posts  []content.Post `json:"posts" binding:"required,min=1"`
}

type ReviewResponseRequest struct {
	ReviewText   string `json:"review_text" binding:"required"`
	ReviewerName string `json:"reviewer_name" binding:"max=100"`
	Tone         string `json:"tone"`
	CompanyName  string `json:"company_name" binding:"max=100"`
}

type FeedbackRequest struct {
	ProfileID string `json:"profile_id"`
	PostDay   int    `json:"post_day"`
	Platform  string `json:"platform"`
	Rating    int    `json:"rating"`
	Note      string `json:"note"`
}

// Generate godoc
//
//	@Summary		Generate a content calendar
//	@Description	Gated: long calendars and reel plans may require a paid plan and count against the monthly reel quota.
//	@Tags			content
//	@Accept			json
//	@Produce		json
//	@Param			request	body		GenerateRequest	true	"Generation request"
//	@Success		200		{object}	utils.APIResponse{data=GenerateResponse}
//	@Failure		401		{object}	utils.APIResponse
//	@Failure		403		{object}	utils.APIResponse
//	@Router			/api/generate [post]
func (h *ContentHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	profileID := profileIDFrom(c, req.ProfileID)
	result, err := h.generateUseCase.Execute(c.Request.Context(), usecases.GeneratePostsCommand{
		UserID:        currentUserID(c),
		ProfileID:     profileID,
		Days:          req.Days,
		StartDate:     req.StartDate,
		Industry:      req.Industry,
		Tone:          req.Tone,
		Platforms:     req.Platforms,
		BrandKeywords: req.BrandKeywords,
		NicheKeywords: req.NicheKeywords,
		Goals:         req.Goals,
		Details:       req.Details,
		IncludeImages: req.IncludeImages,
		Company:       req.Company,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", GenerateResponse{
		Count:     result.Count,
		Posts:     result.Posts,
		ProfileID: profileID,
	})
}

// Export renders posts as a downloadable document. The format comes from
// ?format= or the body, markdown by default.
func (h *ContentHandler) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	format := c.Query("format")
	if format == "" {
		format = req.Format
	}

	result, err := h.exportUseCase.Execute(c.Request.Context(), usecases.ExportCalendarCommand{
		Format: format,
		Title:  req.Title,
		Posts:  req.Posts,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Body)
}

func (h *ContentHandler) GetContent(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.flagsUseCase.Execute(c.Request.Context()))
}

// GenerateReviewResponse godoc
//
//	@Summary	Draft a reply to a customer review
//	@Tags		content
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ReviewResponseRequest	true	"Review"
//	@Success	200		{object}	utils.APIResponse{data=usecases.GenerateReviewResponseResult}
//	@Failure	400		{object}	utils.APIResponse
//	@Router		/api/generate-review-response [post]
func (h *ContentHandler) GenerateReviewResponse(c *gin.Context) {
	var req ReviewResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.reviewUseCase.Execute(c.Request.Context(), usecases.GenerateReviewResponseCommand{
		ReviewText:   req.ReviewText,
		ReviewerName: req.ReviewerName,
		Tone:         req.Tone,
		CompanyName:  req.CompanyName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ContentHandler) SubmitFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	id, err := h.feedbackUseCase.Execute(c.Request.Context(), usecases.SubmitFeedbackCommand{
		ProfileID: profileIDFrom(c, req.ProfileID),
		PostDay:   req.PostDay,
		Platform:  req.Platform,
		Rating:    req.Rating,
		Note:      req.Note,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"ok": true, "id": id})
}
