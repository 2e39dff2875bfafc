package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "vitals/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedLimiter returns a fixed verdict for every key.
type scriptedLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (l *scriptedLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.keys = append(l.keys, key)

	return l.allowed, l.err
}

func newRateLimitTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/auth/login")

	return c, rec
}

func testSlog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRateLimitMiddleware_AllowsWithinBudget(t *testing.T) {
	limiter := &scriptedLimiter{allowed: true}
	m := NewRateLimitMiddleware(limiter, testSlog())

	c, _ := newRateLimitTestContext(t)

	var nextCalled bool
	err := m.Limit(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
	require.Len(t, limiter.keys, 1)
	assert.Contains(t, limiter.keys[0], "/auth/login")
}

func TestRateLimitMiddleware_BlocksOverBudget(t *testing.T) {
	limiter := &scriptedLimiter{allowed: false}
	m := NewRateLimitMiddleware(limiter, testSlog())

	c, _ := newRateLimitTestContext(t)

	err := m.Limit(func(c echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	})(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRateLimited))
}

func TestRateLimitMiddleware_FailsOpenWhenStoreDown(t *testing.T) {
	limiter := &scriptedLimiter{allowed: false, err: errors.New("connection refused")}
	m := NewRateLimitMiddleware(limiter, testSlog())

	c, _ := newRateLimitTestContext(t)

	var nextCalled bool
	err := m.Limit(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
}
