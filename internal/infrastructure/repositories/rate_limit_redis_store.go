package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/indohomz/indohomz-backend/internal/core/domain/ratelimit"
	"github.com/indohomz/indohomz-backend/internal/core/ports"
)

// slidingWindowScript prunes timestamps older than the window, counts what is
// left and only records the new request when it is admitted. Running it as a
// single script keeps check-and-increment atomic across concurrent callers.
//
// KEYS[1] = sorted set for the identifier
// ARGV[1] = window start (ns), ARGV[2] = now (ns),
// ARGV[3] = max requests, ARGV[4] = key TTL (seconds)
//
// Returns {allowed, count, oldest} where oldest is the earliest surviving
// timestamp (0 when the set is empty).
var slidingWindowScript = redis.NewScript(`
redis.call('ZREMRANGEBYSCORE', KEYS[1], '-inf', ARGV[1])
local count = redis.call('ZCARD', KEYS[1])
if count >= tonumber(ARGV[3]) then
	local oldest = redis.call('ZRANGE', KEYS[1], 0, 0, 'WITHSCORES')
	return {0, count, oldest[2]}
end
redis.call('ZADD', KEYS[1], ARGV[2], ARGV[2])
redis.call('EXPIRE', KEYS[1], ARGV[4])
return {1, count + 1, 0}
`)

// RedisRateLimitStore implements a sliding-window log on Redis sorted sets.
// Each request is a member scored by its nanosecond timestamp, so the window
// slides continuously instead of resetting on fixed boundaries, and the state
// is shared across all server instances.
type RedisRateLimitStore struct {
	client    *redis.Client
	keyPrefix string
}

func NewRedisRateLimitStore(client *redis.Client, keyPrefix string) *RedisRateLimitStore {
	return &RedisRateLimitStore{client: client, keyPrefix: keyPrefix}
}

// storeTimeout bounds the Redis round trip so a hung connection degrades to
// the in-memory fallback instead of stalling the request.
const storeTimeout = 3 * time.Second

func (s *RedisRateLimitStore) Check(ctx context.Context, identifier string, maxRequests int, window time.Duration) (*ratelimit.Decision, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	now := time.Now()
	key := fmt.Sprintf("%s:%s", s.keyPrefix, identifier)

	// TTL slightly past the window so idle keys expire on their own.
	ttl := int64(window.Seconds()) + 1

	res, err := slidingWindowScript.Run(ctx, s.client, []string{key},
		now.Add(-window).UnixNano(),
		now.UnixNano(),
		maxRequests,
		ttl,
	).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ratelimit.ErrStoreUnavailable, err)
	}

	vals, ok := res.([]interface{})
	if !ok || len(vals) != 3 {
		return nil, fmt.Errorf("%w: unexpected script result %v", ratelimit.ErrStoreUnavailable, res)
	}

	allowed, _ := vals[0].(int64)
	count, _ := vals[1].(int64)

	decision := &ratelimit.Decision{
		Allowed:      allowed == 1,
		CurrentCount: int(count),
	}

	if !decision.Allowed {
		// The oldest surviving timestamp ages out of the window first; until
		// then every check keeps failing.
		oldest := parseScore(vals[2])
		retryAfter := time.Unix(0, oldest).Add(window).Sub(now)
		if retryAfter < time.Second {
			retryAfter = time.Second
		}
		decision.RetryAfter = retryAfter
	}

	return decision, nil
}

// parseScore handles the two shapes redis returns scores in: a raw integer or
// a string representation.
func parseScore(v interface{}) int64 {
	switch val := v.(type) {
	case int64:
		return val
	case string:
		var n int64
		fmt.Sscanf(val, "%d", &n)
		return n
	default:
		return 0
	}
}

var _ ports.RateLimitStore = (*RedisRateLimitStore)(nil)
