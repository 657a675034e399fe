package syncstate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Moustaash/lcc-availability-2/internal/app/feed"
)

var (
	ErrSyncInProgress = errors.New("syncstate: sync already in progress")
	ErrNeverSynced    = errors.New("syncstate: no successful sync yet")
)

// State is the data-load pipeline state. The engine itself is pure; this is
// the only stateful piece around it.
type State string

const (
	StateIdle    State = "IDLE"
	StateSyncing State = "SYNCING"
	StateSuccess State = "SUCCESS"
	StateError   State = "ERROR"
)

// Source produces the raw feed, typically over HTTP. One shot, no retries.
type Source interface {
	Fetch(ctx context.Context) ([]feed.RawProperty, error)
}

// Store receives the normalized snapshot, replacing the previous one
// wholesale.
type Store interface {
	Replace(ctx context.Context, snap feed.Snapshot) error
}

// Report summarizes one completed sync run.
type Report struct {
	RunID        string    `json:"run_id"`
	Properties   int       `json:"properties"`
	Reservations int       `json:"reservations"`
	CompletedAt  time.Time `json:"completed_at"`
}

// Publisher announces completed sync runs to interested consumers.
type Publisher interface {
	SyncCompleted(ctx context.Context, report Report) error
}

// NopPublisher drops sync events; used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) SyncCompleted(context.Context, Report) error { return nil }

// Status is an observable snapshot of the pipeline.
type Status struct {
	State        State
	LastRunID    string
	LastSyncedAt time.Time
	LastError    string
}

// Pipeline drives IDLE -> SYNCING -> {SUCCESS, ERROR}. Each Sync fetches the
// raw feed, normalizes it and swaps the snapshot in one step, so readers
// always see either the previous or the next complete data set.
type Pipeline struct {
	source    Source
	store     Store
	publisher Publisher
	logger    *slog.Logger

	mu     sync.Mutex
	status Status
}

func NewPipeline(source Source, store Store, publisher Publisher, logger *slog.Logger) *Pipeline {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Pipeline{
		source:    source,
		store:     store,
		publisher: publisher,
		logger:    logger,
		status:    Status{State: StateIdle},
	}
}

// Status returns the current pipeline snapshot.
func (p *Pipeline) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Ready reports readiness for traffic: at least one successful sync.
func (p *Pipeline) Ready() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status.LastSyncedAt.IsZero() {
		return ErrNeverSynced
	}
	return nil
}

// Sync runs one load cycle. Re-invoking after success replaces the snapshot
// idempotently; concurrent invocations are rejected.
func (p *Pipeline) Sync(ctx context.Context) error {
	p.mu.Lock()
	if p.status.State == StateSyncing {
		p.mu.Unlock()
		return ErrSyncInProgress
	}
	p.status.State = StateSyncing
	p.mu.Unlock()

	runID := uuid.NewString()
	started := time.Now()
	p.logger.Info("feed sync started", "run_id", runID)

	raw, err := p.source.Fetch(ctx)
	if err != nil {
		return p.fail(runID, fmt.Errorf("fetch feed: %w", err))
	}

	snap := feed.Normalize(raw, p.logger)
	if err := p.store.Replace(ctx, snap); err != nil {
		return p.fail(runID, fmt.Errorf("replace snapshot: %w", err))
	}

	report := Report{
		RunID:        runID,
		Properties:   len(snap.Properties),
		Reservations: snap.ReservationCount(),
		CompletedAt:  time.Now().UTC(),
	}
	if err := p.publisher.SyncCompleted(ctx, report); err != nil {
		// Event delivery is best effort; the snapshot is already live.
		p.logger.Warn("sync event publish failed", "run_id", runID, "error", err)
	}

	p.mu.Lock()
	p.status = Status{State: StateSuccess, LastRunID: runID, LastSyncedAt: report.CompletedAt}
	p.mu.Unlock()

	p.logger.Info("feed sync finished",
		"run_id", runID,
		"properties", report.Properties,
		"reservations", report.Reservations,
		"duration", time.Since(started))
	return nil
}

func (p *Pipeline) fail(runID string, err error) error {
	p.logger.Error("feed sync failed", "run_id", runID, "error", err)
	p.mu.Lock()
	p.status.State = StateError
	p.status.LastRunID = runID
	p.status.LastError = err.Error()
	p.mu.Unlock()
	return err
}
