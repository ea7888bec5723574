package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"togetherly/internal/application/user/usecases"
	"togetherly/internal/domain/user"
	"togetherly/internal/shared/config"
	"togetherly/internal/shared/id"
	"togetherly/internal/shared/logger"
	"togetherly/internal/shared/utils"
)

const (
	csrfTokenLength = 32
	csrfTokenMaxAge = 12 * 60 * 60
)

type listUsersUseCase interface {
	Execute(ctx context.Context, q usecases.ListUsersQuery) (*usecases.ListUsersResult, error)
}

type AdminHandler struct {
	listUsersUseCase listUsersUseCase
	cookieConfig     config.CookieConfig
	logger           logger.Interface
}

func NewAdminHandler(listUsersUC listUsersUseCase, cookieConfig config.CookieConfig, logger logger.Interface) *AdminHandler {
	return &AdminHandler{
		listUsersUseCase: listUsersUC,
		cookieConfig:     cookieConfig,
		logger:           logger,
	}
}

type AdminUsersResponse struct {
	Users      []*UserResponse `json:"users"`
	Stats      user.Stats      `json:"stats"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

type CSRFTokenResponse struct {
	Token string `json:"csrf_token"`
}

// ListUsers godoc
//
//	@Summary	List accounts with paid and free totals
//	@Tags		admin
//	@Produce	json
//	@Param		page		query		int	false	"Page number"
//	@Param		page_size	query		int	false	"Page size"
//	@Success	200			{object}	utils.APIResponse{data=AdminUsersResponse}
//	@Failure	403			{object}	utils.APIResponse
//	@Router		/api/admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUsersUseCase.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", AdminUsersResponse{
		Users:      toUserResponses(result.Users),
		Stats:      result.Stats,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: utils.TotalPages(result.Total, result.PageSize),
	})
}

// IssueCSRFToken sets the double-submit cookie that admin POSTs must echo
// back in the X-CSRF-Token header.
func (h *AdminHandler) IssueCSRFToken(c *gin.Context) {
	token, err := id.GenerateWithPrefix(id.PrefixCSRF, csrfTokenLength)
	if err != nil {
		h.logger.Errorw("failed to generate csrf token", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to issue csrf token")
		return
	}

	utils.SetCSRFCookie(c, h.cookieConfig, token, csrfTokenMaxAge)
	utils.SuccessResponse(c, http.StatusOK, "", CSRFTokenResponse{Token: token})
}
