package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/indohomz/indohomz-backend/internal/core/domain/ratelimit"
	"github.com/indohomz/indohomz-backend/internal/core/ports"
)

type windowEntry struct {
	count       int
	windowStart time.Time
	lastSeen    time.Time
}

// MemoryRateLimitStore is a fixed-window counter keyed by identifier. It is
// the always-available fallback when Redis is disabled or unreachable; state
// is per-process and lost on restart.
type MemoryRateLimitStore struct {
	mu      sync.Mutex
	entries map[string]*windowEntry

	cleanupInterval time.Duration
	retention       time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
	logger *logrus.Logger
}

func NewMemoryRateLimitStore(cleanupInterval, retention time.Duration, logger *logrus.Logger) *MemoryRateLimitStore {
	return &MemoryRateLimitStore{
		entries:         make(map[string]*windowEntry),
		cleanupInterval: cleanupInterval,
		retention:       retention,
		logger:          logger,
	}
}

// Check counts the request against the identifier's fixed window. A rejected
// request does not touch the counter, so a client hammering the endpoint
// cannot push its own window start forward.
func (s *MemoryRateLimitStore) Check(_ context.Context, identifier string, maxRequests int, window time.Duration) (*ratelimit.Decision, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[identifier]
	if !ok || now.Sub(entry.windowStart) >= window {
		// New identifier or expired window: admit and start a fresh window.
		s.entries[identifier] = &windowEntry{
			count:       1,
			windowStart: now,
			lastSeen:    now,
		}
		return &ratelimit.Decision{Allowed: true, CurrentCount: 1}, nil
	}

	entry.lastSeen = now
	if entry.count >= maxRequests {
		retryAfter := entry.windowStart.Add(window).Sub(now)
		if retryAfter < time.Second {
			retryAfter = time.Second
		}
		return &ratelimit.Decision{
			Allowed:      false,
			CurrentCount: entry.count,
			RetryAfter:   retryAfter,
		}, nil
	}

	entry.count++
	return &ratelimit.Decision{Allowed: true, CurrentCount: entry.count}, nil
}

// Start launches the background sweep that drops identifiers idle longer than
// the retention period. Safe to call once; pair with Stop on shutdown.
func (s *MemoryRateLimitStore) Start() {
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go func() {
		defer close(s.doneCh)
		ticker := time.NewTicker(s.cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the sweep goroutine and waits for it to exit.
func (s *MemoryRateLimitStore) Stop() {
	if s.stopCh == nil {
		return
	}
	close(s.stopCh)
	<-s.doneCh
}

func (s *MemoryRateLimitStore) sweep() {
	cutoff := time.Now().Add(-s.retention)

	s.mu.Lock()
	removed := 0
	for identifier, entry := range s.entries {
		if entry.lastSeen.Before(cutoff) {
			delete(s.entries, identifier)
			removed++
		}
	}
	remaining := len(s.entries)
	s.mu.Unlock()

	if removed > 0 && s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"removed":   removed,
			"remaining": remaining,
		}).Debug("Swept stale rate limit entries")
	}
}

var _ ports.RateLimitStore = (*MemoryRateLimitStore)(nil)
