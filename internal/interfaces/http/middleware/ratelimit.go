package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"togetherly/internal/infrastructure/ratelimit"
	"togetherly/internal/shared/logger"
	"togetherly/internal/shared/utils"
)

// RateLimiter throttles a route group per client IP. A nil limiter disables it.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	scope   string
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, scope string, logger logger.Interface) *RateLimiter {
	return &RateLimiter{limiter: limiter, scope: scope, logger: logger}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.limiter == nil {
			c.Next()
			return
		}

		allowed, err := rl.limiter.Allow(c.Request.Context(), rl.scope+":"+c.ClientIP())
		if err != nil {
			// a broken limiter backend must not take the API down with it
			rl.logger.Warnw("rate limiter unavailable", "scope", rl.scope, "error", err)
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
