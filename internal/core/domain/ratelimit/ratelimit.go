package ratelimit

import (
	"errors"
	"time"
)

// Decision is the outcome of a single rate-limit check. A rejection is a
// normal outcome, not an error.
type Decision struct {
	Allowed      bool          `json:"allowed"`
	CurrentCount int           `json:"current_count"`
	RetryAfter   time.Duration `json:"retry_after"`
}

// ErrStoreUnavailable signals an infrastructure fault in a backing store.
// The limiter absorbs it by falling back to the alternate store; it is never
// surfaced to the end caller.
var ErrStoreUnavailable = errors.New("rate limit store unavailable")
