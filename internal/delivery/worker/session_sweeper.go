// Package worker contains background deliveries that run beside the API.
package worker

import (
	"context"
	"log/slog"
	"time"

	"vitals/config"
	"vitals/internal/delivery"
	"vitals/internal/usecase"

	"go.uber.org/fx"
)

// SweeperParams holds dependencies for the session sweeper
type SweeperParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	Session usecase.SessionUsecase
}

// sessionSweeper periodically deletes expired refresh tokens so the session
// table reflects only sessions that can still be used.
type sessionSweeper struct {
	interval time.Duration
	logger   *slog.Logger
	session  usecase.SessionUsecase
	done     chan struct{}
}

// NewSessionSweeper creates the background sweeper delivery
func NewSessionSweeper(params SweeperParams) (delivery.Delivery, error) {
	sweeper := &sessionSweeper{
		interval: params.Cfg.Session.CleanupInterval,
		logger:   params.Logger,
		session:  params.Session,
		done:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: sweeper.stop,
	})

	return sweeper, nil
}

// Serve runs the sweep loop until the application stops.
func (s *sessionSweeper) Serve(ctx context.Context) error {
	s.logger.Info("Starting session sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.done:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *sessionSweeper) sweep(ctx context.Context) {
	if err := s.session.CleanupExpiredSessions(ctx); err != nil {
		s.logger.Error("Expired session cleanup failed", slog.Any("error", err))

		return
	}

	s.logger.Debug("Expired session cleanup completed")
}

func (s *sessionSweeper) stop(ctx context.Context) error {
	s.logger.Info("Shutting down session sweeper")
	close(s.done)

	return nil
}
