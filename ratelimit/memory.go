package ratelimit

import (
	"context"
	"sync"
	"time"
)

const defaultSweepInterval = 5 * time.Minute

type entry struct {
	count  int
	resets time.Time
}

// MemoryLimiter is a process-local fixed-window limiter keyed by
// (clientID, action). The map is guarded with a mutex since every request
// runs on its own goroutine.
type MemoryLimiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

// Ensure MemoryLimiter implements Limiter
var _ Limiter = (*MemoryLimiter)(nil)

// NewMemoryLimiter creates an in-memory limiter and starts a background
// sweep that prunes expired windows every sweepInterval.
func NewMemoryLimiter(sweepInterval time.Duration) *MemoryLimiter {
	l := &MemoryLimiter{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
	if sweepInterval > 0 {
		go l.sweep(sweepInterval)
	}
	return l
}

// Allow increments the counter for (clientID, action). A fresh or expired
// window resets the count to 1 and admits the request.
func (l *MemoryLimiter) Allow(_ context.Context, action, clientID string, maxRequests int, window time.Duration) (bool, time.Duration, error) {
	key := clientID + ":" + action
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok || now.After(e.resets) {
		l.entries[key] = &entry{count: 1, resets: now.Add(window)}
		return true, 0, nil
	}

	e.count++
	if e.count > maxRequests {
		return false, e.resets.Sub(now), nil
	}
	return true, 0, nil
}

func (l *MemoryLimiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		now := l.now()
		l.mu.Lock()
		for key, e := range l.entries {
			if now.After(e.resets) {
				delete(l.entries, key)
			}
		}
		l.mu.Unlock()
	}
}
