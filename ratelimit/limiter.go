// Package ratelimit provides per-(client, action) request limiting.
//
// The default backend is a process-local fixed-window counter map. It does
// not coordinate across instances and resets on restart; when REDIS_ADDR is
// configured the Redis backend is used instead so the window survives both.
package ratelimit

import (
	"context"
	"log"
	"time"
)

// Limiter decides whether a request identified by (clientID, action) is
// allowed under the given per-window maximum. When rejected, retryAfter is
// the remaining window time.
type Limiter interface {
	Allow(ctx context.Context, action, clientID string, maxRequests int, window time.Duration) (allowed bool, retryAfter time.Duration, err error)
}

// New selects the limiter backend: Redis when an address is configured,
// otherwise the in-memory fixed-window map.
func New(redisAddr string) Limiter {
	if redisAddr != "" {
		if l, err := NewRedisLimiter(redisAddr); err == nil {
			log.Printf("✓ Rate limiter using Redis backend at %s", redisAddr)
			return l
		} else {
			log.Printf("⚠️  Failed to connect to Redis at %s: %v. Falling back to in-memory limiter", redisAddr, err)
		}
	}
	return NewMemoryLimiter(defaultSweepInterval)
}
