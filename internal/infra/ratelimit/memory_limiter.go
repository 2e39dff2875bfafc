package ratelimit

import (
	"context"
	"sync"
	"time"
)

// memoryLimiter is the in-process counterpart of the Redis limiter, for
// single-instance deployments and tests. Windows are pruned lazily on access.
type memoryLimiter struct {
	mu          sync.Mutex
	windows     map[string]*attemptWindow
	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

type attemptWindow struct {
	count   int
	resetAt time.Time
}

// NewMemoryLimiter builds a limiter on an in-process counter map.
func NewMemoryLimiter(maxAttempts int, window time.Duration) Limiter {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	if window <= 0 {
		window = time.Minute
	}

	return &memoryLimiter{
		windows:     make(map[string]*attemptWindow),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

// Allow counts the attempt and reports whether it is within budget.
func (l *memoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) {
		l.windows[key] = &attemptWindow{count: 1, resetAt: now.Add(l.window)}

		return true, nil
	}

	w.count++

	return w.count <= l.maxAttempts, nil
}
