package audit

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"vitals/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureAuditRepo records every entry it receives.
type captureAuditRepo struct {
	mu      sync.Mutex
	entries []*entity.AuditEntry
	err     error
}

func (r *captureAuditRepo) CreateAuditEntry(_ context.Context, entry *entity.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}

	r.entries = append(r.entries, entry)

	return nil
}

func (r *captureAuditRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

func newTestRecorder(repo *captureAuditRepo, bufferSize int) *asyncRecorder {
	recorder := &asyncRecorder{
		repo:   repo,
		logger: slog.Default(),
		ch:     make(chan *entity.AuditEntry, bufferSize),
		done:   make(chan struct{}),
	}

	recorder.wg.Add(1)
	go recorder.run()

	return recorder
}

func TestAsyncRecorder_PersistsEntries(t *testing.T) {
	t.Parallel()

	repo := &captureAuditRepo{}
	recorder := newTestRecorder(repo, 16)

	for range 5 {
		recorder.Record(context.Background(), &entity.AuditEntry{
			Action:  entity.AuditActionLogin,
			Success: true,
		})
	}

	require.Eventually(t, func() bool {
		return repo.count() == 5
	}, time.Second, 10*time.Millisecond)

	recorder.Close()
}

func TestAsyncRecorder_StampsTimestamp(t *testing.T) {
	t.Parallel()

	repo := &captureAuditRepo{}
	recorder := newTestRecorder(repo, 4)

	before := time.Now()
	recorder.Record(context.Background(), &entity.AuditEntry{
		Action:  entity.AuditActionRegister,
		Success: true,
	})
	recorder.Close()

	require.Len(t, repo.entries, 1)
	assert.False(t, repo.entries[0].Timestamp.Before(before))
}

func TestAsyncRecorder_CloseDrainsBuffer(t *testing.T) {
	t.Parallel()

	repo := &captureAuditRepo{}
	recorder := newTestRecorder(repo, 32)

	for range 10 {
		recorder.Record(context.Background(), &entity.AuditEntry{
			Action:  entity.AuditActionTokenRefresh,
			Success: true,
		})
	}

	recorder.Close()

	assert.Equal(t, 10, repo.count())
}

func TestAsyncRecorder_RecordAfterCloseIsNoOp(t *testing.T) {
	t.Parallel()

	repo := &captureAuditRepo{}
	recorder := newTestRecorder(repo, 4)
	recorder.Close()

	recorder.Record(context.Background(), &entity.AuditEntry{
		Action:  entity.AuditActionLogout,
		Success: true,
	})

	assert.Zero(t, repo.count())
}

func TestAsyncRecorder_SwallowsPersistenceFailures(t *testing.T) {
	t.Parallel()

	repo := &captureAuditRepo{err: assert.AnError}
	recorder := newTestRecorder(repo, 4)

	recorder.Record(context.Background(), &entity.AuditEntry{
		Action:  entity.AuditActionLogin,
		Success: false,
	})

	// Close waits for the drainer, which must not panic or block on the error.
	recorder.Close()

	assert.Zero(t, repo.count())
}

func TestNoopRecorder_DiscardsEntries(t *testing.T) {
	t.Parallel()

	var recorder Recorder = noopRecorder{}
	recorder.Record(context.Background(), &entity.AuditEntry{Action: entity.AuditActionLogin})
}
