package http

import (
	"context"
	"fmt"

	"togetherly/internal/interfaces/http/handlers"
	"togetherly/internal/interfaces/http/middleware"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler  *handlers.HealthHandler
	authHandler    *handlers.AuthHandler
	profileHandler *handlers.ProfileHandler
	contentHandler *handlers.ContentHandler
	billingHandler *handlers.BillingHandler
	adminHandler   *handlers.AdminHandler
}

// gormPinger resolves the pool lazily so a closed database reports unhealthy
// instead of panicking.
type gormPinger struct {
	c *Container
}

func (p gormPinger) PingContext(ctx context.Context) error {
	sqlDB, err := p.c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (c *Container) initHandlers() {
	ucs := c.ucs
	cookie := c.cfg.Auth.Cookie

	c.hdlrs = &allHandlers{
		healthHandler: handlers.NewHealthHandler(gormPinger{c: c}, c.log),
		authHandler: handlers.NewAuthHandler(
			ucs.registerUC, ucs.loginUC, ucs.requestResetUC, ucs.resetPasswordUC, ucs.getUserUC,
			cookie, c.log,
		),
		profileHandler: handlers.NewProfileHandler(ucs.saveProfileUC, ucs.getProfileUC, cookie, c.log),
		contentHandler: handlers.NewContentHandler(
			ucs.generatePostsUC, ucs.exportCalendarUC, ucs.contentFlagsUC, ucs.reviewResponseUC, ucs.submitFeedbackUC,
			c.log,
		),
		billingHandler: handlers.NewBillingHandler(
			ucs.checkoutUC, ucs.webhookUC, ucs.cancelUC, ucs.accountUC, ucs.reconcileUC, ucs.reconcileJobUC,
			c.log,
		),
		adminHandler: handlers.NewAdminHandler(ucs.listUsersUC, cookie, c.log),
	}
}

func (c *Container) initMiddlewares() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.cfg.Auth.Cookie, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, len(c.cfg.Auth.AdminEmails) > 0, c.log)

	if !c.cfg.RateLimit.Enabled {
		return
	}
	c.authLimiter = middleware.NewRateLimiter(c.newLimiter(c.cfg.RateLimit.RequestsPerMinute), "auth", c.log)
	c.generateLimiter = middleware.NewRateLimiter(c.newLimiter(generateRequestsPerMinute), "generate", c.log)
}
