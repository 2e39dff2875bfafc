package middleware

import (
	"log/slog"

	deliverycontext "vitals/internal/delivery/context"
	domainerrors "vitals/internal/domain/errors"
	"vitals/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware throttles credential-guessing surfaces per client IP.
type RateLimitMiddleware struct {
	limiter ratelimit.Limiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware creates a new rate limit middleware
func NewRateLimitMiddleware(limiter ratelimit.Limiter, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, logger: logger}
}

// Limit counts one attempt per request against the client's window. The
// limiter fails open: if the counter store is down, authentication keeps
// working and the outage is logged instead.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		key := "auth:" + c.Path() + ":" + c.RealIP()

		allowed, err := m.limiter.Allow(ctx, key)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("rate limit check failed, allowing request",
				slog.String("key", key),
				slog.Any("error", err),
			)

			return next(c)
		}

		if !allowed {
			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}
