package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLimiter(t *testing.T, maxFailures int) (*RedisLoginLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLoginLimiter(client, maxFailures, time.Minute), mr
}

func TestRedisLoginLimiter_BlocksAfterMaxFailures(t *testing.T) {
	ctx := context.Background()
	l, _ := setupLimiter(t, 3)

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "admin")
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d", i)
		require.NoError(t, l.RecordFailure(ctx, "admin"))
	}

	ok, err := l.Allow(ctx, "admin")
	require.NoError(t, err)
	assert.False(t, ok)

	other, err := l.Allow(ctx, "someone-else")
	require.NoError(t, err)
	assert.True(t, other)
}

func TestRedisLoginLimiter_WindowExpires(t *testing.T) {
	ctx := context.Background()
	l, mr := setupLimiter(t, 1)

	require.NoError(t, l.RecordFailure(ctx, "admin"))
	assert.Equal(t, time.Minute, mr.TTL(failureKey("admin")))

	ok, err := l.Allow(ctx, "admin")
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(time.Minute + time.Second)

	ok, err = l.Allow(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLoginLimiter_Reset(t *testing.T) {
	ctx := context.Background()
	l, _ := setupLimiter(t, 1)

	require.NoError(t, l.RecordFailure(ctx, "admin"))
	require.NoError(t, l.Reset(ctx, "admin"))

	ok, err := l.Allow(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLoginLimiter_ReportsRedisErrors(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	l := NewRedisLoginLimiter(client, 1, time.Minute)
	mr.Close()

	_, err = l.Allow(ctx, "admin")
	assert.Error(t, err)
}

func TestNoopLimiter(t *testing.T) {
	var l LoginLimiter = NoopLimiter{}
	ctx := context.Background()

	require.NoError(t, l.RecordFailure(ctx, "admin"))
	ok, err := l.Allow(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, l.Reset(ctx, "admin"))
}
