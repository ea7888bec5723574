package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"togetherly/internal/infrastructure/auth"
	"togetherly/internal/infrastructure/billing"
	"togetherly/internal/infrastructure/email"
	"togetherly/internal/infrastructure/enhancer"
	"togetherly/internal/infrastructure/featureflag"
	"togetherly/internal/infrastructure/metrics"
	"togetherly/internal/infrastructure/permission"
	"togetherly/internal/infrastructure/ratelimit"
	"togetherly/internal/infrastructure/template"
	"togetherly/internal/shared/services/markdown"
)

// generateRequestsPerMinute bounds anonymous generation per client IP; the
// usage gate handles paid quotas separately.
const generateRequestsPerMinute = 20

// initInfrastructure creates Redis, repositories and the infrastructure
// services the use cases depend on.
func (c *Container) initInfrastructure() error {
	cfg := c.cfg

	if cfg.Redis.Enabled {
		c.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := c.redis.Ping(ctx).Err()
		cancel()
		if err != nil {
			// Limiters fall back to process memory; nothing else needs Redis.
			c.log.Warnw("redis unavailable, using in-memory rate limiting", "addr", cfg.Redis.GetAddr(), "error", err)
			_ = c.redis.Close()
			c.redis = nil
		}
	}

	c.initRepositories()

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.SessionDuration())
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.SyncAdmins(cfg.Auth.AdminEmails); err != nil {
		return fmt.Errorf("failed to sync admin roles: %w", err)
	}
	c.enforcer = enforcer

	flags, err := featureflag.NewStore(cfg.FeatureFlags.Path, c.log)
	if err != nil {
		return fmt.Errorf("failed to load feature flags: %w", err)
	}
	c.flags = flags

	c.metrics = metrics.NewCollector()
	flags.OnChange(c.metrics.RecordFlagsReload)

	if cfg.Billing.Configured() {
		c.provider = billing.NewStripeProvider(cfg.Billing, c.log)
	} else {
		c.log.Infow("billing not configured, checkout and reconcile are disabled")
	}

	c.enhancer = enhancer.NewClient(cfg.Enhancer)
	if c.enhancer == nil {
		c.log.Infow("caption enhancement disabled")
	}

	c.emailSvc = email.NewSMTPEmailService(email.SMTPConfig{
		Host:                cfg.Email.SMTPHost,
		Port:                cfg.Email.SMTPPort,
		Username:            cfg.Email.SMTPUser,
		Password:            cfg.Email.SMTPPassword,
		FromAddress:         cfg.Email.FromAddress,
		FromName:            cfg.Email.FromName,
		BaseURL:             cfg.Server.BaseURL,
		ResetExpiresMinutes: cfg.Auth.Token.ResetExpiresMinutes,
	})

	c.templates = template.NewExportTemplateLoader(cfg.Export.TemplatesPath, c.log)
	if err := c.templates.Load(); err != nil {
		return fmt.Errorf("failed to load export templates: %w", err)
	}
	c.renderer = markdown.NewRenderer()

	return nil
}

// newLimiter prefers Redis so limits hold across instances.
func (c *Container) newLimiter(perMinute int) ratelimit.RateLimiter {
	lc := ratelimit.RateLimitConfig{RequestsPerMinute: perMinute}
	if c.redis != nil {
		return ratelimit.NewRedisRateLimiter(c.redis, lc)
	}
	return ratelimit.NewMemoryRateLimiter(lc)
}
