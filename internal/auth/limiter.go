package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter tracks failed logins per username.
type LoginLimiter interface {
	Allow(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// NoopLimiter never blocks. It is used when Redis is not configured.
type NoopLimiter struct{}

func (NoopLimiter) Allow(context.Context, string) (bool, error)  { return true, nil }
func (NoopLimiter) RecordFailure(context.Context, string) error { return nil }
func (NoopLimiter) Reset(context.Context, string) error         { return nil }

// RedisLoginLimiter counts failures in a fixed window keyed by username.
type RedisLoginLimiter struct {
	client      *redis.Client
	maxFailures int64
	window      time.Duration
}

// NewRedisLoginLimiter constructs a limiter. maxFailures <= 0 falls back to 5.
func NewRedisLoginLimiter(client *redis.Client, maxFailures int, window time.Duration) *RedisLoginLimiter {
	if maxFailures <= 0 {
		maxFailures = 5
	}
	return &RedisLoginLimiter{client: client, maxFailures: int64(maxFailures), window: window}
}

func failureKey(username string) string {
	return "login:failures:" + username
}

// Allow reports whether another attempt is permitted for username.
func (l *RedisLoginLimiter) Allow(ctx context.Context, username string) (bool, error) {
	count, err := l.client.Get(ctx, failureKey(username)).Int64()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return count < l.maxFailures, nil
}

// RecordFailure increments the counter; the window starts at the first failure.
func (l *RedisLoginLimiter) RecordFailure(ctx context.Context, username string) error {
	key := failureKey(username)
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		return l.client.Expire(ctx, key, l.window).Err()
	}
	return nil
}

// Reset clears the counter after a successful login.
func (l *RedisLoginLimiter) Reset(ctx context.Context, username string) error {
	return l.client.Del(ctx, failureKey(username)).Err()
}
