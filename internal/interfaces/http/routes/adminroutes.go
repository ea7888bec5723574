package routes

import (
	"github.com/gin-gonic/gin"

	"togetherly/internal/infrastructure/permission"
	"togetherly/internal/interfaces/http/handlers"
	"togetherly/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for admin-only routes.
type AdminRouteConfig struct {
	AdminHandler         *handlers.AdminHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures admin-only routes.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/api/admin")
	admin.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequirePermission(permission.ResourceAdminConsole, permission.ActionRead),
	)
	{
		admin.GET("/users", cfg.AdminHandler.ListUsers)
		admin.GET("/csrf", cfg.AdminHandler.IssueCSRFToken)
	}
}
