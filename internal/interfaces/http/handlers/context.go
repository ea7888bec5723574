package handlers

import (
	"github.com/gin-gonic/gin"

	"togetherly/internal/shared/constants"
	"togetherly/internal/shared/utils"
)

// currentUserID returns 0 for anonymous callers.
func currentUserID(c *gin.Context) uint {
	return c.GetUint(constants.ContextKeyUserID)
}

// profileIDFrom prefers an explicit id over the one remembered in the cookie.
func profileIDFrom(c *gin.Context, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return utils.GetProfileCookie(c)
}
