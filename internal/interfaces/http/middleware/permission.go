package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"togetherly/internal/shared/constants"
	"togetherly/internal/shared/logger"
	"togetherly/internal/shared/utils"
)

// PermissionChecker is implemented by *permission.Enforcer.
type PermissionChecker interface {
	Enforce(email, resource, action string) (bool, error)
}

// PermissionMiddleware guards admin routes. When no admin emails are
// configured the deployment is unrestricted and any signed-in user passes.
type PermissionMiddleware struct {
	checker    PermissionChecker
	restricted bool
	logger     logger.Interface
}

func NewPermissionMiddleware(checker PermissionChecker, restricted bool, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		checker:    checker,
		restricted: restricted,
		logger:     logger,
	}
}

// Restricted reports whether admin routes are limited to configured admins.
func (m *PermissionMiddleware) Restricted() bool {
	return m.restricted
}

// RequirePermission must run after RequireAuth.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(constants.ContextKeyUserID); !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "sign in required")
			c.Abort()
			return
		}
		if !m.restricted {
			c.Next()
			return
		}

		email := c.GetString(constants.ContextKeyUserEmail)
		allowed, err := m.checker.Enforce(email, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}
		if !allowed {
			m.logger.Warnw("permission denied",
				"user_id", c.GetUint(constants.ContextKeyUserID),
				"resource", resource,
				"action", action,
			)
			utils.ErrorResponse(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyIsAdmin, true)
		c.Next()
	}
}
