package ratelimit

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter counts requests in Redis with INCR + EXPIRE so the window is
// shared across instances and survives restarts.
type RedisLimiter struct {
	client *redis.Client
}

// Ensure RedisLimiter implements Limiter
var _ Limiter = (*RedisLimiter)(nil)

// NewRedisLimiter connects to Redis and verifies the connection
func NewRedisLimiter(addr string) (*RedisLimiter, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &RedisLimiter{client: client}, nil
}

// Allow increments the window counter for (clientID, action). A Redis
// failure admits the request rather than taking the API down with it.
func (l *RedisLimiter) Allow(ctx context.Context, action, clientID string, maxRequests int, window time.Duration) (bool, time.Duration, error) {
	key := fmt.Sprintf("rate_limit:%s:%s", action, clientID)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		log.Printf("⚠️  Rate limiter Redis INCR failed for %s: %v. Allowing request", key, err)
		return true, 0, nil
	}

	// First hit in the window sets its expiry
	if count == 1 {
		if err := l.client.Expire(ctx, key, window).Err(); err != nil {
			log.Printf("⚠️  Rate limiter Redis EXPIRE failed for %s: %v", key, err)
		}
	}

	if count > int64(maxRequests) {
		ttl, err := l.client.TTL(ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = window
		}
		return false, ttl, nil
	}
	return true, 0, nil
}
