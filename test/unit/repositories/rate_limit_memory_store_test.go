package repositories_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	impl "github.com/indohomz/indohomz-backend/internal/infrastructure/repositories"
)

// Test: requests within the window are admitted up to the limit, then rejected
func TestMemoryStore_WindowFillsAndRejects(t *testing.T) {
	store := impl.NewMemoryRateLimitStore(time.Minute, time.Hour, nil)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		decision, err := store.Check(ctx, "login:1.2.3.4", 5, time.Minute)
		require.NoError(t, err)
		require.True(t, decision.Allowed)
		require.Equal(t, i, decision.CurrentCount)
	}

	decision, err := store.Check(ctx, "login:1.2.3.4", 5, time.Minute)
	require.NoError(t, err)
	require.False(t, decision.Allowed)
	require.Equal(t, 5, decision.CurrentCount)
	require.GreaterOrEqual(t, decision.RetryAfter, time.Second)
	require.LessOrEqual(t, decision.RetryAfter, time.Minute)
}

// Test: rejected requests do not consume quota or move the window start
func TestMemoryStore_RejectDoesNotIncrement(t *testing.T) {
	store := impl.NewMemoryRateLimitStore(time.Minute, time.Hour, nil)
	ctx := context.Background()

	_, err := store.Check(ctx, "x", 1, time.Minute)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		decision, err := store.Check(ctx, "x", 1, time.Minute)
		require.NoError(t, err)
		require.False(t, decision.Allowed)
		require.Equal(t, 1, decision.CurrentCount)
	}
}

// Test: an expired window resets and the request is admitted again
func TestMemoryStore_WindowExpiryResets(t *testing.T) {
	store := impl.NewMemoryRateLimitStore(time.Minute, time.Hour, nil)
	ctx := context.Background()

	window := 50 * time.Millisecond
	_, err := store.Check(ctx, "x", 1, window)
	require.NoError(t, err)

	decision, err := store.Check(ctx, "x", 1, window)
	require.NoError(t, err)
	require.False(t, decision.Allowed)

	time.Sleep(window + 10*time.Millisecond)

	decision, err = store.Check(ctx, "x", 1, window)
	require.NoError(t, err)
	require.True(t, decision.Allowed)
	require.Equal(t, 1, decision.CurrentCount)
}

// Test: five requests in a minute fill the window; the sixth reports a wait
// of nearly the full window
func TestMemoryStore_RetryAfterNearFullWindow(t *testing.T) {
	store := impl.NewMemoryRateLimitStore(time.Minute, time.Hour, nil)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		decision, err := store.Check(ctx, "burst5", 5, time.Minute)
		require.NoError(t, err)
		require.True(t, decision.Allowed)
	}

	decision, err := store.Check(ctx, "burst5", 5, time.Minute)
	require.NoError(t, err)
	require.False(t, decision.Allowed)
	require.GreaterOrEqual(t, decision.RetryAfter, 59*time.Second)
	require.LessOrEqual(t, decision.RetryAfter, 60*time.Second)
}

// Test: identifiers have independent windows
func TestMemoryStore_IdentifiersIsolated(t *testing.T) {
	store := impl.NewMemoryRateLimitStore(time.Minute, time.Hour, nil)
	ctx := context.Background()

	_, err := store.Check(ctx, "login:1.2.3.4", 1, time.Minute)
	require.NoError(t, err)
	rejected, err := store.Check(ctx, "login:1.2.3.4", 1, time.Minute)
	require.NoError(t, err)
	require.False(t, rejected.Allowed)

	other, err := store.Check(ctx, "register:1.2.3.4", 1, time.Minute)
	require.NoError(t, err)
	require.True(t, other.Allowed)
}

// Test: under concurrent load exactly maxRequests are admitted
func TestMemoryStore_ConcurrentChecksAdmitExactlyMax(t *testing.T) {
	store := impl.NewMemoryRateLimitStore(time.Minute, time.Hour, nil)
	ctx := context.Background()

	const maxRequests = 50
	var allowed, failed int64
	var wg sync.WaitGroup
	for i := 0; i < 2*maxRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			decision, err := store.Check(ctx, "burst", maxRequests, time.Minute)
			if err != nil {
				atomic.AddInt64(&failed, 1)
				return
			}
			if decision.Allowed {
				atomic.AddInt64(&allowed, 1)
			}
		}()
	}
	wg.Wait()

	require.Zero(t, failed)
	require.Equal(t, int64(maxRequests), allowed)
}

// Test: the sweep drops idle identifiers but Start/Stop is clean
func TestMemoryStore_StartStop(t *testing.T) {
	store := impl.NewMemoryRateLimitStore(10*time.Millisecond, time.Hour, nil)
	store.Start()

	_, err := store.Check(context.Background(), "x", 5, time.Minute)
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)
	store.Stop()

	// Stop is idempotent via the nil guard after a fresh store
	fresh := impl.NewMemoryRateLimitStore(time.Minute, time.Hour, nil)
	fresh.Stop()
}
