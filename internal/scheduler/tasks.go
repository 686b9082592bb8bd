package scheduler

import (
	"context"
	"log/slog"
)

// ExpiredJobCloser closes jobs whose application deadline has passed.
type ExpiredJobCloser interface {
	CloseExpiredJobs(ctx context.Context) (int64, error)
}

// SessionSweeper drops expired refresh sessions.
type SessionSweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// DeadlineCloser closes active and paused jobs past their deadline
type DeadlineCloser struct {
	jobs   ExpiredJobCloser
	logger *slog.Logger
}

// NewDeadlineCloser creates the deadline closing task
func NewDeadlineCloser(jobs ExpiredJobCloser, logger *slog.Logger) *DeadlineCloser {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeadlineCloser{jobs: jobs, logger: logger}
}

func (t *DeadlineCloser) Name() string { return "close-expired-jobs" }

func (t *DeadlineCloser) Run(ctx context.Context) error {
	n, err := t.jobs.CloseExpiredJobs(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		t.logger.InfoContext(ctx, "closed expired jobs", slog.Int64("count", n))
	}
	return nil
}

// SessionSweep removes expired refresh sessions from an in-memory store.
// Redis expires sessions on its own and needs no sweep.
type SessionSweep struct {
	store  SessionSweeper
	logger *slog.Logger
}

// NewSessionSweep creates the session sweeping task
func NewSessionSweep(store SessionSweeper, logger *slog.Logger) *SessionSweep {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionSweep{store: store, logger: logger}
}

func (t *SessionSweep) Name() string { return "sweep-sessions" }

func (t *SessionSweep) Run(ctx context.Context) error {
	n, err := t.store.Sweep(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		t.logger.DebugContext(ctx, "swept expired sessions", slog.Int("count", n))
	}
	return nil
}
