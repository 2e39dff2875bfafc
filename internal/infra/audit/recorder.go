// Package audit provides the asynchronous recorder that persists audit
// entries off the request path.
package audit

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"vitals/config"
	"vitals/internal/domain/entity"
	"vitals/internal/domain/lifecycle"
	"vitals/internal/domain/repository"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/fx"
)

var (
	entriesWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vitals_audit_entries_written_total",
		Help: "Number of audit entries persisted.",
	})
	entriesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vitals_audit_entries_dropped_total",
		Help: "Number of audit entries dropped because the buffer was full.",
	})
)

// Recorder accepts audit entries for eventual persistence. Record never
// blocks the caller and never surfaces persistence failures; a handler
// must not fail because the audit write did.
type Recorder interface {
	Record(ctx context.Context, entry *entity.AuditEntry)
}

// Params defines the parameters required for the audit recorder.
type Params struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	AuditRepo repository.AuditRepository
	Lifecycle fx.Lifecycle
}

// asyncRecorder buffers entries on a channel and persists them from a single
// drainer goroutine. A full buffer drops the entry rather than blocking the
// request.
type asyncRecorder struct {
	repo      repository.AuditRepository
	logger    *slog.Logger
	ch        chan *entity.AuditEntry
	done      chan struct{}
	wg        sync.WaitGroup
	closed    atomic.Bool
	closeOnce sync.Once
}

// New creates the audit recorder and registers its shutdown hook.
// When auditing is disabled by configuration, a no-op recorder is returned.
func New(params Params) Recorder {
	if params.Config.Audit == nil || !params.Config.Audit.Enabled {
		return noopRecorder{}
	}

	recorder := &asyncRecorder{
		repo:   params.AuditRepo,
		logger: params.Logger,
		ch:     make(chan *entity.AuditEntry, params.Config.Audit.BufferSize),
		done:   make(chan struct{}),
	}

	recorder.wg.Add(1)
	go recorder.run()

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			recorder.Close()

			return nil
		},
	})

	return recorder
}

// Record enqueues the entry for persistence. If the buffer is full the entry
// is dropped and counted; auditing must never back-pressure request handling.
func (r *asyncRecorder) Record(_ context.Context, entry *entity.AuditEntry) {
	if entry == nil || r.closed.Load() {
		return
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	select {
	case r.ch <- entry:
	case <-r.done:
	default:
		entriesDropped.Inc()
		r.logger.Warn("audit buffer full, entry dropped",
			slog.String("action", entry.Action.String()),
		)
	}
}

// Close stops the recorder after draining any buffered entries.
func (r *asyncRecorder) Close() {
	r.closeOnce.Do(func() {
		r.closed.Store(true)
		close(r.done)
		r.wg.Wait()
	})
}

func (r *asyncRecorder) run() {
	defer r.wg.Done()

	for {
		select {
		case entry := <-r.ch:
			r.persist(entry)
		case <-r.done:
			for {
				select {
				case entry := <-r.ch:
					r.persist(entry)
				default:
					return
				}
			}
		}
	}
}

// persist writes a single entry with its own deadline, detached from any
// request context that may already be gone.
func (r *asyncRecorder) persist(entry *entity.AuditEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := r.repo.CreateAuditEntry(ctx, entry); err != nil {
		r.logger.Warn("failed to persist audit entry",
			slog.String("action", entry.Action.String()),
			slog.Any("error", err),
		)

		return
	}

	entriesWritten.Inc()
}

// noopRecorder discards every entry. Used when auditing is disabled.
type noopRecorder struct{}

func (noopRecorder) Record(context.Context, *entity.AuditEntry) {}
