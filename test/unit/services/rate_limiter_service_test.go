package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	impl "github.com/indohomz/indohomz-backend/internal/application/services"
	"github.com/indohomz/indohomz-backend/internal/core/domain/ratelimit"
	tmocks "github.com/indohomz/indohomz-backend/test/mocks"
)

// Test: a healthy primary store answers and the fallback is never consulted
func TestRateLimiter_PrimaryHealthy_FallbackNotConsulted(t *testing.T) {
	fallbackCalls := 0
	primary := &tmocks.RateLimitStoreMock{CheckFn: func(ctx context.Context, identifier string, maxRequests int, window time.Duration) (*ratelimit.Decision, error) {
		return &ratelimit.Decision{Allowed: true, CurrentCount: 3}, nil
	}}
	fallback := &tmocks.RateLimitStoreMock{CheckFn: func(ctx context.Context, identifier string, maxRequests int, window time.Duration) (*ratelimit.Decision, error) {
		fallbackCalls++
		return &ratelimit.Decision{Allowed: true, CurrentCount: 1}, nil
	}}

	svc := impl.NewRateLimiterService(primary, fallback, nil)
	decision, err := svc.Check(context.Background(), "login:1.2.3.4", 10, time.Minute)
	require.NoError(t, err)
	require.True(t, decision.Allowed)
	require.Equal(t, 3, decision.CurrentCount)
	require.Equal(t, 0, fallbackCalls)
}

// Test: a failing primary falls back to memory, per call
func TestRateLimiter_PrimaryFails_FallbackAnswers(t *testing.T) {
	primary := &tmocks.RateLimitStoreMock{CheckFn: func(ctx context.Context, identifier string, maxRequests int, window time.Duration) (*ratelimit.Decision, error) {
		return nil, fmt.Errorf("%w: connection refused", ratelimit.ErrStoreUnavailable)
	}}
	fallback := &tmocks.RateLimitStoreMock{CheckFn: func(ctx context.Context, identifier string, maxRequests int, window time.Duration) (*ratelimit.Decision, error) {
		return &ratelimit.Decision{Allowed: false, CurrentCount: maxRequests, RetryAfter: 30 * time.Second}, nil
	}}

	svc := impl.NewRateLimiterService(primary, fallback, nil)
	decision, err := svc.Check(context.Background(), "login:1.2.3.4", 10, time.Minute)
	require.NoError(t, err)
	require.False(t, decision.Allowed)
	require.Equal(t, 30*time.Second, decision.RetryAfter)
}

// Test: store selection happens on every call, so a recovered primary is
// used again without any reset
func TestRateLimiter_PrimaryRecovers_UsedAgain(t *testing.T) {
	primaryHealthy := false
	primaryCalls := 0
	fallbackCalls := 0
	primary := &tmocks.RateLimitStoreMock{CheckFn: func(ctx context.Context, identifier string, maxRequests int, window time.Duration) (*ratelimit.Decision, error) {
		primaryCalls++
		if !primaryHealthy {
			return nil, ratelimit.ErrStoreUnavailable
		}
		return &ratelimit.Decision{Allowed: true, CurrentCount: 1}, nil
	}}
	fallback := &tmocks.RateLimitStoreMock{CheckFn: func(ctx context.Context, identifier string, maxRequests int, window time.Duration) (*ratelimit.Decision, error) {
		fallbackCalls++
		return &ratelimit.Decision{Allowed: true, CurrentCount: 1}, nil
	}}

	svc := impl.NewRateLimiterService(primary, fallback, nil)

	_, err := svc.Check(context.Background(), "x", 10, time.Minute)
	require.NoError(t, err)
	require.Equal(t, 1, fallbackCalls)

	primaryHealthy = true
	_, err = svc.Check(context.Background(), "x", 10, time.Minute)
	require.NoError(t, err)
	require.Equal(t, 2, primaryCalls)
	require.Equal(t, 1, fallbackCalls)
}

// Test: when both stores fail the request is allowed (fail open)
func TestRateLimiter_AllStoresFail_FailsOpen(t *testing.T) {
	failing := func(ctx context.Context, identifier string, maxRequests int, window time.Duration) (*ratelimit.Decision, error) {
		return nil, ratelimit.ErrStoreUnavailable
	}
	svc := impl.NewRateLimiterService(&tmocks.RateLimitStoreMock{CheckFn: failing}, &tmocks.RateLimitStoreMock{CheckFn: failing}, nil)

	decision, err := svc.Check(context.Background(), "x", 10, time.Minute)
	require.NoError(t, err)
	require.True(t, decision.Allowed)
}

// Test: a misconfigured policy is an error, not a store fault
func TestRateLimiter_InvalidPolicyRejected(t *testing.T) {
	svc := impl.NewRateLimiterService(nil, &tmocks.RateLimitStoreMock{}, nil)

	_, err := svc.Check(context.Background(), "", 10, time.Minute)
	require.Error(t, err)
	_, err = svc.Check(context.Background(), "x", 0, time.Minute)
	require.Error(t, err)
	_, err = svc.Check(context.Background(), "x", 10, 0)
	require.Error(t, err)
}

// Test: nil primary (Redis disabled) goes straight to the fallback
func TestRateLimiter_NilPrimary_UsesFallback(t *testing.T) {
	fallback := &tmocks.RateLimitStoreMock{CheckFn: func(ctx context.Context, identifier string, maxRequests int, window time.Duration) (*ratelimit.Decision, error) {
		return &ratelimit.Decision{Allowed: true, CurrentCount: 7}, nil
	}}

	svc := impl.NewRateLimiterService(nil, fallback, nil)
	decision, err := svc.Check(context.Background(), "x", 10, time.Minute)
	require.NoError(t, err)
	require.Equal(t, 7, decision.CurrentCount)
}
