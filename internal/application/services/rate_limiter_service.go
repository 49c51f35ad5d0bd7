package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/indohomz/indohomz-backend/internal/core/domain/ratelimit"
	"github.com/indohomz/indohomz-backend/internal/core/ports"
)

// RateLimiterService routes checks to the preferred store and falls back to
// the in-memory store when it fails. Store selection is per call, so the
// limiter recovers automatically once Redis comes back. If both stores fail
// the request is allowed: losing rate limiting briefly is cheaper than
// turning an infrastructure fault into an outage.
type RateLimiterService struct {
	primary  ports.RateLimitStore
	fallback ports.RateLimitStore
	logger   *logrus.Logger
}

// NewRateLimiterService creates a rate limiter. primary may be nil when Redis
// is disabled; fallback must always be usable.
func NewRateLimiterService(primary, fallback ports.RateLimitStore, logger *logrus.Logger) *RateLimiterService {
	return &RateLimiterService{primary: primary, fallback: fallback, logger: logger}
}

func (s *RateLimiterService) Check(ctx context.Context, identifier string, maxRequests int, window time.Duration) (*ratelimit.Decision, error) {
	// Misconfigured policies are programmer errors, not store faults.
	if identifier == "" || maxRequests <= 0 || window <= 0 {
		return nil, fmt.Errorf("invalid rate limit check: identifier=%q max=%d window=%s", identifier, maxRequests, window)
	}

	if s.primary != nil {
		decision, err := s.primary.Check(ctx, identifier, maxRequests, window)
		if err == nil {
			return decision, nil
		}
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"identifier": identifier}).WithError(err).Warn("rate limiter: primary store failed, falling back to memory")
		}
	}

	decision, err := s.fallback.Check(ctx, identifier, maxRequests, window)
	if err == nil {
		return decision, nil
	}

	// fail open
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"identifier": identifier}).WithError(err).Warn("rate limiter: all stores failed, allowing request")
	}
	return &ratelimit.Decision{Allowed: true}, nil
}

var _ ports.RateLimiterService = (*RateLimiterService)(nil)
