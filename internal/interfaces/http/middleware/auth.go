package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"togetherly/internal/infrastructure/auth"
	"togetherly/internal/shared/config"
	"togetherly/internal/shared/constants"
	"togetherly/internal/shared/logger"
	"togetherly/internal/shared/utils"
)

// SessionVerifier is implemented by *auth.JWTService.
type SessionVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	sessions     SessionVerifier
	cookieConfig config.CookieConfig
	logger       logger.Interface
}

func NewAuthMiddleware(sessions SessionVerifier, cookieConfig config.CookieConfig, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:     sessions,
		cookieConfig: cookieConfig,
		logger:       logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.token(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "sign in required")
			c.Abort()
			return
		}

		if !m.authenticate(c, token) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired session")
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid session is present and
// otherwise lets the request through anonymously.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := m.token(c); token != "" {
			m.authenticate(c, token)
		}
		c.Next()
	}
}

// token reads the session cookie first, then a Bearer header.
func (m *AuthMiddleware) token(c *gin.Context) string {
	if token := utils.GetSessionToken(c, m.cookieConfig); token != "" {
		return token
	}
	parts := strings.SplitN(c.GetHeader(constants.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func (m *AuthMiddleware) authenticate(c *gin.Context, token string) bool {
	claims, err := m.sessions.Verify(token)
	if err != nil {
		m.logger.Debugw("session rejected", "error", err, "path", c.Request.URL.Path)
		return false
	}
	userID, err := claims.UserID()
	if err != nil {
		m.logger.Warnw("session has a malformed subject", "error", err)
		return false
	}

	c.Set(constants.ContextKeyUserID, userID)
	c.Set(constants.ContextKeyUserEmail, claims.Email)
	return true
}
