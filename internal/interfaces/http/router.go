package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"togetherly/internal/interfaces/http/middleware"
	"togetherly/internal/interfaces/http/routes"

	_ "togetherly/docs"
)

// SetupRoutes installs global middleware and every route group.
func (c *Container) SetupRoutes() {
	engine := c.engine

	engine.Use(middleware.RequestLogger(c.log, c.metrics))
	engine.Use(middleware.Recovery(c.log))
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	engine.GET("/health", c.hdlrs.healthHandler.HealthCheck)
	engine.GET("/version", c.hdlrs.healthHandler.Version)
	if c.cfg.Metrics.Enabled {
		engine.GET(c.metricsPath(), gin.WrapH(c.metrics.Handler()))
	}
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.authHandler,
		AuthMiddleware: c.authMiddleware,
		RateLimiter:    c.authLimiter,
	})

	routes.SetupContentRoutes(engine, &routes.ContentRouteConfig{
		ProfileHandler: c.hdlrs.profileHandler,
		ContentHandler: c.hdlrs.contentHandler,
		AuthMiddleware: c.authMiddleware,
		RateLimiter:    c.generateLimiter,
	})

	routes.SetupBillingRoutes(engine, &routes.BillingRouteConfig{
		BillingHandler:       c.hdlrs.billingHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupAdminRoutes(engine, &routes.AdminRouteConfig{
		AdminHandler:         c.hdlrs.adminHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}

func (c *Container) metricsPath() string {
	if c.cfg.Metrics.Path == "" {
		return "/metrics"
	}
	return c.cfg.Metrics.Path
}
