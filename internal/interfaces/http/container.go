package http

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	contentUsecases "togetherly/internal/application/content/usecases"
	subscriptionUsecases "togetherly/internal/application/subscription/usecases"
	"togetherly/internal/infrastructure/auth"
	"togetherly/internal/infrastructure/billing"
	"togetherly/internal/infrastructure/config"
	"togetherly/internal/infrastructure/email"
	"togetherly/internal/infrastructure/enhancer"
	"togetherly/internal/infrastructure/featureflag"
	"togetherly/internal/infrastructure/metrics"
	"togetherly/internal/infrastructure/permission"
	"togetherly/internal/infrastructure/scheduler"
	"togetherly/internal/infrastructure/template"
	"togetherly/internal/interfaces/http/middleware"
	"togetherly/internal/shared/logger"
	"togetherly/internal/shared/services/markdown"
)

// Container holds the infrastructure components, repositories, use cases,
// handlers and background services of one server process, and tears them
// down again in Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	authLimiter          *middleware.RateLimiter
	generateLimiter      *middleware.RateLimiter

	// Infrastructure services
	jwtSvc    *auth.JWTService
	hasher    *auth.BcryptPasswordHasher
	enforcer  *permission.Enforcer
	flags     *featureflag.Store
	metrics   *metrics.Collector
	provider  *billing.StripeProvider // nil when billing is not configured
	enhancer  *enhancer.Client        // nil when enhancement is disabled
	emailSvc  *email.SMTPEmailService
	templates *template.ExportTemplateLoader
	renderer  *markdown.Renderer

	// Background services
	scheduler *scheduler.ReconcileScheduler
}

// NewContainer wires every component in dependency order. Nothing is started;
// the caller runs the scheduler and flag watcher alongside the HTTP server.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, repositories, services
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Use cases
	c.initUseCases()

	// Section 3: Handlers and middlewares
	c.initHandlers()
	c.initMiddlewares()

	// Section 4: Background services
	c.scheduler = newReconcileScheduler(cfg, c.ucs.reconcileUC, log)

	return c, nil
}

// newReconcileScheduler returns nil when billing is not configured; a
// scheduled pass would fail on every row without a provider.
func newReconcileScheduler(cfg *config.Config, reconciler scheduler.Reconciler, log logger.Interface) *scheduler.ReconcileScheduler {
	if !cfg.Billing.Configured() {
		log.Infow("reconcile scheduler not created, billing is not configured")
		return nil
	}
	return scheduler.NewReconcileScheduler(
		reconciler,
		time.Duration(cfg.Scheduler.ReconcileIntervalMinutes)*time.Minute,
		cfg.Billing.ReconcileTimeout(),
		log,
	)
}

// Engine returns the gin engine; SetupRoutes must have been called first.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

func (c *Container) Flags() *featureflag.Store {
	return c.flags
}

// Scheduler is nil when billing is not configured.
func (c *Container) Scheduler() *scheduler.ReconcileScheduler {
	return c.scheduler
}

func (c *Container) ReconcileUseCase() *subscriptionUsecases.ReconcileSubscriptionsUseCase {
	return c.ucs.reconcileUC
}

func (c *Container) GenerateUseCase() *contentUsecases.GeneratePostsUseCase {
	return c.ucs.generatePostsUC
}

// Shutdown stops background services and releases connections. It is safe
// to call once the HTTP server has stopped accepting requests.
func (c *Container) Shutdown(ctx context.Context) error {
	var errs []error

	if c.scheduler != nil {
		c.scheduler.Stop()
	}
	if c.flags != nil {
		if err := c.flags.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
