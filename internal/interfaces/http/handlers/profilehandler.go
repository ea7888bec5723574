package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"togetherly/internal/application/profile/dto"
	"togetherly/internal/application/profile/usecases"
	"togetherly/internal/shared/config"
	"togetherly/internal/shared/logger"
	"togetherly/internal/shared/utils"
)

type ProfileHandler struct {
	saveProfileUseCase saveProfileUseCase
	getProfileUseCase  getProfileUseCase
	cookieConfig       config.CookieConfig
	logger             logger.Interface
}

func NewProfileHandler(
	saveUC saveProfileUseCase,
	getUC getProfileUseCase,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *ProfileHandler {
	return &ProfileHandler{
		saveProfileUseCase: saveUC,
		getProfileUseCase:  getUC,
		cookieConfig:       cookieConfig,
		logger:             logger,
	}
}

type SaveProfileRequest struct {
	ProfileID     string         `json:"profile_id"`
	Industry      string         `json:"industry" binding:"max=100"`
	Tone          string         `json:"tone" binding:"max=50"`
	Platforms     []string       `json:"platforms" binding:"max=10"`
	BrandKeywords []string       `json:"brand_keywords" binding:"max=50"`
	NicheKeywords []string       `json:"niche_keywords" binding:"max=50"`
	Goals         []string       `json:"goals" binding:"max=20"`
	Company       string         `json:"company"`
	IncludeImages *bool          `json:"include_images"`
	Details       map[string]any `json:"details"`
}

// SaveProfileResponse mirrors what clients already consume: ok plus the id to reuse.
type SaveProfileResponse struct {
	OK        bool                 `json:"ok"`
	ProfileID string               `json:"profile_id"`
	Profile   *dto.ProfileResponse `json:"profile"`
}

// SaveProfile godoc
//
//	@Summary	Create or update the caller's business profile
//	@Tags		profile
//	@Accept		json
//	@Produce	json
//	@Param		request	body		SaveProfileRequest	true	"Profile"
//	@Success	200		{object}	utils.APIResponse{data=SaveProfileResponse}
//	@Failure	400		{object}	utils.APIResponse
//	@Router		/api/profile [post]
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	p, err := h.saveProfileUseCase.Execute(c.Request.Context(), usecases.SaveProfileCommand{
		UserID:        currentUserID(c),
		ProfileID:     profileIDFrom(c, req.ProfileID),
		Industry:      req.Industry,
		Tone:          req.Tone,
		Platforms:     req.Platforms,
		BrandKeywords: req.BrandKeywords,
		NicheKeywords: req.NicheKeywords,
		Goals:         req.Goals,
		Company:       req.Company,
		IncludeImages: req.IncludeImages,
		Details:       req.Details,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetProfileCookie(c, h.cookieConfig, p.ID())
	utils.SuccessResponse(c, http.StatusOK, "profile saved", SaveProfileResponse{
		OK:        true,
		ProfileID: p.ID(),
		Profile:   dto.ToProfileResponse(p),
	})
}

// GetProfile answers with null data when the caller has no profile yet.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p, err := h.getProfileUseCase.Execute(c.Request.Context(), profileIDFrom(c, c.Query("profile_id")), currentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.ToProfileResponse(p))
}
