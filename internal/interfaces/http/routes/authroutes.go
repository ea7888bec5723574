package routes

import (
	"github.com/gin-gonic/gin"

	"togetherly/internal/interfaces/http/handlers"
	"togetherly/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for account and session routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter // may be nil when rate limiting is off
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	api := engine.Group("/api")
	{
		api.POST("/signup", cfg.RateLimiter.Limit(), cfg.AuthHandler.Signup)
		api.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
		api.POST("/logout", cfg.AuthHandler.Logout)
		api.GET("/current_user", cfg.AuthMiddleware.OptionalAuth(), cfg.AuthHandler.GetCurrentUser)

		api.POST("/request-password-reset", cfg.RateLimiter.Limit(), cfg.AuthHandler.RequestPasswordReset)
		api.POST("/confirm-password-reset", cfg.RateLimiter.Limit(), cfg.AuthHandler.ConfirmPasswordReset)
	}
}
