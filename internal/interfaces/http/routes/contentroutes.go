package routes

import (
	"github.com/gin-gonic/gin"

	"togetherly/internal/interfaces/http/handlers"
	"togetherly/internal/interfaces/http/middleware"
)

// ContentRouteConfig holds dependencies for profile and content routes.
type ContentRouteConfig struct {
	ProfileHandler *handlers.ProfileHandler
	ContentHandler *handlers.ContentHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter // may be nil when rate limiting is off
}

// SetupContentRoutes configures profile, generation, export and feedback
// routes. All of them work anonymously; a session only unlocks gated features.
func SetupContentRoutes(engine *gin.Engine, cfg *ContentRouteConfig) {
	api := engine.Group("/api")
	api.Use(cfg.AuthMiddleware.OptionalAuth())
	{
		api.GET("/profile", cfg.ProfileHandler.GetProfile)
		api.POST("/profile", cfg.ProfileHandler.SaveProfile)

		api.POST("/generate", cfg.RateLimiter.Limit(), cfg.ContentHandler.Generate)
		api.POST("/generate-review-response", cfg.RateLimiter.Limit(), cfg.ContentHandler.GenerateReviewResponse)
		api.POST("/export", cfg.ContentHandler.Export)

		api.GET("/content", cfg.ContentHandler.GetContent)
		api.POST("/feedback", cfg.ContentHandler.SubmitFeedback)
	}
}
