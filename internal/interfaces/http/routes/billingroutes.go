package routes

import (
	"github.com/gin-gonic/gin"

	"togetherly/internal/infrastructure/permission"
	"togetherly/internal/interfaces/http/handlers"
	"togetherly/internal/interfaces/http/middleware"
)

// BillingRouteConfig holds dependencies for checkout, webhook, account and
// reconcile routes.
type BillingRouteConfig struct {
	BillingHandler       *handlers.BillingHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupBillingRoutes configures billing routes.
func SetupBillingRoutes(engine *gin.Engine, cfg *BillingRouteConfig) {
	api := engine.Group("/api")

	// Webhooks authenticate by signature, not session.
	api.POST("/stripe-webhook", cfg.BillingHandler.StripeWebhook)

	account := api.Group("")
	account.Use(cfg.AuthMiddleware.RequireAuth())
	{
		account.POST("/create-checkout-session", cfg.BillingHandler.CreateCheckoutSession)
		account.POST("/cancel-subscription", cfg.BillingHandler.CancelSubscription)
		account.GET("/account", cfg.BillingHandler.GetAccount)
	}

	reconcile := api.Group("/reconcile-subscriptions")
	reconcile.Use(
		cfg.AuthMiddleware.RequireAuth(),
		middleware.CSRF(cfg.PermissionMiddleware.Restricted()),
	)
	{
		reconcile.POST("",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceReconcile, permission.ActionRun),
			cfg.BillingHandler.ReconcileSubscriptions,
		)
		reconcile.GET("/:id",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceReconcile, permission.ActionRead),
			cfg.BillingHandler.GetReconcileJob,
		)
	}
}
