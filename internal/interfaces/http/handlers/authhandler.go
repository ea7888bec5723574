package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"togetherly/internal/application/user/usecases"
	"togetherly/internal/shared/config"
	"togetherly/internal/shared/logger"
	"togetherly/internal/shared/utils"
)

type AuthHandler struct {
	registerUseCase      registerUseCase
	loginUseCase         loginUseCase
	requestResetUseCase  requestPasswordResetUseCase
	resetPasswordUseCase resetPasswordUseCase
	getUserUseCase       getUserUseCase
	cookieConfig         config.CookieConfig
	logger               logger.Interface
}

func NewAuthHandler(
	registerUC registerUseCase,
	loginUC loginUseCase,
	requestResetUC requestPasswordResetUseCase,
	resetPasswordUC resetPasswordUseCase,
	getUserUC getUserUseCase,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:      registerUC,
		loginUseCase:         loginUC,
		requestResetUseCase:  requestResetUC,
		resetPasswordUseCase: resetPasswordUC,
		getUserUseCase:       getUserUC,
		cookieConfig:         cookieConfig,
		logger:               logger,
	}
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ConfirmPasswordResetRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup godoc
//
//	@Summary	Create an account and start a session
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		SignupRequest	true	"Credentials"
//	@Success	201		{object}	utils.APIResponse{data=SessionResponse}
//	@Failure	400		{object}	utils.APIResponse
//	@Failure	409		{object}	utils.APIResponse
//	@Router		/api/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), usecases.RegisterWithPasswordCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.startSession(c, result)
	utils.CreatedResponse(c, SessionResponse{User: toUserResponse(result.User), ExpiresAt: result.ExpiresAt}, "account created")
}

// Login godoc
//
//	@Summary	Sign in with email and password
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		LoginRequest	true	"Credentials"
//	@Success	200		{object}	utils.APIResponse{data=SessionResponse}
//	@Failure	401		{object}	utils.APIResponse
//	@Router		/api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginWithPasswordCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.startSession(c, result)
	utils.SuccessResponse(c, http.StatusOK, "login successful", SessionResponse{
		User:      toUserResponse(result.User),
		ExpiresAt: result.ExpiresAt,
	})
}

// Logout clears the session cookie. Tokens are stateless, so nothing is revoked server side.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "logout successful", nil)
}

func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		utils.ErrorResponse(c, http.StatusUnauthorized, "sign in required")
		return
	}

	u, err := h.getUserUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toUserResponse(u))
}

func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	if err := h.requestResetUseCase.Execute(c.Request.Context(), usecases.RequestPasswordResetCommand{Email: req.Email}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "if the email exists, a password reset link has been sent", nil)
}

func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req ConfirmPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	err := h.resetPasswordUseCase.Execute(c.Request.Context(), usecases.ResetPasswordCommand{
		Token:       req.Token,
		NewPassword: req.Password,
	})
	if err != nil {
		h.logger.Warnw("password reset failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password reset successfully", nil)
}

func (h *AuthHandler) startSession(c *gin.Context, result *usecases.AuthResult) {
	maxAge := int(time.Until(time.Unix(result.ExpiresAt, 0)).Seconds())
	utils.SetSessionCookie(c, h.cookieConfig, result.Token, max(maxAge, 0))
}
