package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(now time.Time) (*MemoryLimiter, *time.Time) {
	clock := now
	l := NewMemoryLimiter(0)
	l.now = func() time.Time { return clock }
	return l, &clock
}

func TestMemoryLimiterAllow(t *testing.T) {
	ctx := context.Background()
	window := 15 * time.Minute

	t.Run("RejectsAboveLimit", func(t *testing.T) {
		l, _ := newTestLimiter(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

		for i := 0; i < 5; i++ {
			ok, _, err := l.Allow(ctx, "admin-write", "10.0.0.1", 5, window)
			require.NoError(t, err)
			assert.True(t, ok, "request %d should be admitted", i+1)
		}

		ok, retryAfter, err := l.Allow(ctx, "admin-write", "10.0.0.1", 5, window)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Greater(t, retryAfter, time.Duration(0))
		assert.LessOrEqual(t, retryAfter, window)
	})

	t.Run("WindowExpiryResetsCount", func(t *testing.T) {
		l, clock := newTestLimiter(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

		for i := 0; i < 3; i++ {
			ok, _, err := l.Allow(ctx, "login", "10.0.0.1", 2, window)
			require.NoError(t, err)
			if i < 2 {
				assert.True(t, ok)
			} else {
				assert.False(t, ok)
			}
		}

		// Advance past the window; the next request starts a fresh count
		*clock = clock.Add(window + time.Second)
		ok, _, err := l.Allow(ctx, "login", "10.0.0.1", 2, window)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("KeysAreIndependent", func(t *testing.T) {
		l, _ := newTestLimiter(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

		ok, _, err := l.Allow(ctx, "login", "10.0.0.1", 1, window)
		require.NoError(t, err)
		require.True(t, ok)

		ok, _, err = l.Allow(ctx, "login", "10.0.0.1", 1, window)
		require.NoError(t, err)
		assert.False(t, ok, "same client and action shares the budget")

		// Different client, same action
		ok, _, err = l.Allow(ctx, "login", "10.0.0.2", 1, window)
		require.NoError(t, err)
		assert.True(t, ok)

		// Same client, different action
		ok, _, err = l.Allow(ctx, "admin-read", "10.0.0.1", 1, window)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
