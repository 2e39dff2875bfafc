package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, maxAttempts int, window time.Duration) (Limiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisLimiter(client, maxAttempts, window), mr
}

func TestRedisLimiter_AllowsWithinBudget(t *testing.T) {
	t.Parallel()

	limiter, _ := newTestLimiter(t, 3, time.Minute)

	for i := range 3 {
		allowed, err := limiter.Allow(context.Background(), "login:alice@example.com")
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d should be allowed", i+1)
	}
}

func TestRedisLimiter_BlocksOverBudget(t *testing.T) {
	t.Parallel()

	limiter, _ := newTestLimiter(t, 2, time.Minute)

	for range 2 {
		allowed, err := limiter.Allow(context.Background(), "login:bob@example.com")
		require.NoError(t, err)
		require.True(t, allowed)
	}

	allowed, err := limiter.Allow(context.Background(), "login:bob@example.com")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestRedisLimiter_WindowExpiryResetsBudget(t *testing.T) {
	t.Parallel()

	limiter, mr := newTestLimiter(t, 1, time.Minute)

	allowed, err := limiter.Allow(context.Background(), "login:carol@example.com")
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow(context.Background(), "login:carol@example.com")
	require.NoError(t, err)
	require.False(t, allowed)

	mr.FastForward(2 * time.Minute)

	allowed, err = limiter.Allow(context.Background(), "login:carol@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisLimiter_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	limiter, _ := newTestLimiter(t, 1, time.Minute)

	allowed, err := limiter.Allow(context.Background(), "login:dave@example.com")
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow(context.Background(), "login:erin@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisLimiter_StoreUnavailable(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	limiter := NewRedisLimiter(client, 3, time.Minute)
	mr.Close()
	_ = client.Close()

	_, err := limiter.Allow(context.Background(), "login:frank@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestAllowAllLimiter(t *testing.T) {
	t.Parallel()

	var limiter Limiter = allowAllLimiter{}

	allowed, err := limiter.Allow(context.Background(), "anything")
	require.NoError(t, err)
	assert.True(t, allowed)
}
