// Package ratelimit throttles the credential endpoints with a fixed-window
// counter backed by Redis.
package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"vitals/config"
	"vitals/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ErrStoreUnavailable reports that the counter store could not be reached.
// Callers decide whether to fail open or closed.
var ErrStoreUnavailable = errors.New("rate limit store unavailable")

// Limiter enforces a per-key attempt budget within a rolling window.
type Limiter interface {
	// Allow increments the counter for key and reports whether the attempt
	// is within budget. The window starts at the first attempt on the key.
	Allow(ctx context.Context, key string) (bool, error)
}

// Params defines the parameters required for the limiter.
type Params struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

// redisLimiter implements Limiter with INCR plus EXPIRE on first increment.
type redisLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// New creates the limiter and its Redis client, wiring connection teardown
// into the application lifecycle. When rate limiting is disabled by
// configuration, a pass-through limiter is returned.
func New(params Params) (Limiter, error) {
	if params.Config.RateLimit == nil || !params.Config.RateLimit.Enabled {
		return allowAllLimiter{}, nil
	}
	if params.Config.RateLimit.Store == "memory" {
		return NewMemoryLimiter(params.Config.RateLimit.MaxAttempts, params.Config.RateLimit.Window), nil
	}
	if params.Config.Redis == nil {
		return nil, errors.New("rate limiting enabled but redis is not configured")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(pingCtx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			params.Logger.Info("redis connected", slog.String("addr", params.Config.Redis.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return NewRedisLimiter(client, params.Config.RateLimit.MaxAttempts, params.Config.RateLimit.Window), nil
}

// NewRedisLimiter builds a limiter on an existing Redis client.
func NewRedisLimiter(client *redis.Client, maxAttempts int, window time.Duration) Limiter {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	if window <= 0 {
		window = time.Minute
	}

	return &redisLimiter{
		client:      client,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Allow counts the attempt and reports whether it is within budget.
func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, errors.Wrapf(ErrStoreUnavailable, "incr failed: %v", err)
	}

	// The first attempt opens the window.
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, errors.Wrapf(ErrStoreUnavailable, "expire failed: %v", err)
		}
	}

	return count <= int64(l.maxAttempts), nil
}

// allowAllLimiter admits every attempt. Used when rate limiting is disabled.
type allowAllLimiter struct{}

func (allowAllLimiter) Allow(context.Context, string) (bool, error) {
	return true, nil
}
