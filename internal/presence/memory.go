package presence

import (
	"context"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-private-chat/internal/logger"
	"github.com/sbilibin2017/gw-private-chat/internal/models"
)

// MemoryTracker keeps heartbeats in process memory. State is lost on restart.
type MemoryTracker struct {
	mu       sync.Mutex
	lastSeen map[string]time.Time
	window   time.Duration
	now      func() time.Time
}

// NewMemoryTracker creates a tracker that treats heartbeats older than
// window as offline.
func NewMemoryTracker(window time.Duration) *MemoryTracker {
	return NewMemoryTrackerWithClock(window, time.Now)
}

// NewMemoryTrackerWithClock is NewMemoryTracker with an injectable clock.
func NewMemoryTrackerWithClock(window time.Duration, now func() time.Time) *MemoryTracker {
	return &MemoryTracker{
		lastSeen: make(map[string]time.Time),
		window:   window,
		now:      now,
	}
}

// SetOnline records a heartbeat for userID.
func (t *MemoryTracker) SetOnline(_ context.Context, userID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastSeen[userID] = t.now()
	return nil
}

// SetOffline forgets userID.
func (t *MemoryTracker) SetOffline(_ context.Context, userID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.lastSeen, userID)
	return nil
}

// ListWithStatus purges expired heartbeats and annotates users with presence.
func (t *MemoryTracker) ListWithStatus(_ context.Context, users []models.User) ([]models.UserWithStatus, error) {
	t.mu.Lock()
	cutoff := t.now().Add(-t.window)
	online := make(map[string]struct{}, len(t.lastSeen))
	purged := 0
	for id, seen := range t.lastSeen {
		if seen.Before(cutoff) {
			delete(t.lastSeen, id)
			purged++
			continue
		}
		online[id] = struct{}{}
	}
	t.mu.Unlock()

	if purged > 0 {
		logger.Log.Debugw("purged expired presence entries", "count", purged)
	}

	return annotate(users, online), nil
}
