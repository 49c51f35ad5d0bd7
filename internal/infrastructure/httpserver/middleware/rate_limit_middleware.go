package middleware

import (
	"fmt"
	"math"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	config "github.com/indohomz/indohomz-backend/configs"
	"github.com/indohomz/indohomz-backend/internal/core/ports"
	"github.com/indohomz/indohomz-backend/internal/infrastructure/httpserver/helpers"
)

type RateLimitMiddleware struct {
	rateLimiter ports.RateLimiterService
	config      *config.RateLimitConfig
	logger      *logrus.Logger
}

func NewRateLimitMiddleware(rateLimiter ports.RateLimiterService, cfg *config.RateLimitConfig, logger *logrus.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{rateLimiter: rateLimiter, config: cfg, logger: logger}
}

// Limit applies a named policy to an endpoint. Each action has its own
// identifier namespace so quotas never bleed between endpoints.
func (r *RateLimitMiddleware) Limit(action string, policy config.RateLimitPolicy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := helpers.ClientIdentifier(c, action)

			decision, err := r.rateLimiter.Check(c.Request().Context(), identifier, policy.MaxRequests, policy.Window)
			if err != nil {
				// The service already fails open internally; an error here is
				// unexpected but must not block the request.
				if r.logger != nil {
					r.logger.WithError(err).WithField("identifier", identifier).Warn("rate limiter error; allowing request")
				}
				return next(c)
			}

			c.Response().Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", policy.MaxRequests))
			remaining := policy.MaxRequests - decision.CurrentCount
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

			if !decision.Allowed {
				retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
				if retryAfter < 1 {
					retryAfter = 1
				}
				c.Response().Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
				if r.logger != nil {
					r.logger.WithFields(logrus.Fields{"identifier": identifier, "retry_after": retryAfter}).Info("rate limit exceeded")
				}
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "too many requests",
					"retry_after": retryAfter,
				})
			}

			return next(c)
		}
	}
}

// Default applies the catch-all policy.
func (r *RateLimitMiddleware) Default() echo.MiddlewareFunc {
	return r.Limit("default", r.config.Default)
}
