package ports

import (
	"context"
	"time"

	"github.com/indohomz/indohomz-backend/internal/core/domain/ratelimit"
)

// RateLimitStore provides the low-level increment-and-check operation for one
// backing store. Implementations must be safe for concurrent use and must not
// consume quota for rejected checks.
type RateLimitStore interface {
	// Check counts this request against the identifier's window. When the
	// request is admitted the count has already been incremented; when it is
	// rejected the stored state is unchanged and Decision.RetryAfter reports
	// how long the caller must wait (>= 1s).
	Check(ctx context.Context, identifier string, maxRequests int, window time.Duration) (*ratelimit.Decision, error)
}

// RateLimiterService decides whether a request attributed to an identifier may
// proceed. Implementations encapsulate store selection and fallback and MUST
// be safe for concurrent use.
type RateLimiterService interface {
	Check(ctx context.Context, identifier string, maxRequests int, window time.Duration) (*ratelimit.Decision, error)
}
