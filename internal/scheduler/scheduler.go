package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Task is a unit of background work.
type Task interface {
	Name() string
	Run(ctx context.Context) error
}

// Config holds scheduler settings
type Config struct {
	Logger  *slog.Logger
	Timeout time.Duration // Per-run deadline (default 2 minutes)
}

// Scheduler wraps robfig/cron and runs registered tasks.
type Scheduler struct {
	cron    *cron.Cron
	logger  *slog.Logger
	timeout time.Duration

	mu      sync.Mutex
	running bool
	tasks   []Task
}

// New creates a scheduler. Nothing runs until Start.
func New(cfg Config) *Scheduler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 2 * time.Minute
	}
	logger := cfg.Logger.With("component", "scheduler")
	adapter := cronLogger{logger: logger}

	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(adapter),
			cron.WithChain(cron.Recover(adapter), cron.SkipIfStillRunning(adapter)),
		),
		logger:  logger,
		timeout: cfg.Timeout,
	}
}

// Add registers task on spec, a standard five-field cron expression or a
// descriptor such as "@hourly" or "@every 15m".
func (s *Scheduler) Add(spec string, task Task) error {
	if _, err := s.cron.AddFunc(spec, func() { s.runTask(context.Background(), task) }); err != nil {
		return fmt.Errorf("schedule %s (%q): %w", task.Name(), spec, err)
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()
	return nil
}

// Start begins running scheduled tasks. Calling Start twice is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.cron.Start()
	s.logger.Info("scheduler started", slog.Int("tasks", len(s.tasks)))
}

// Stop stops scheduling and waits for running tasks until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler stop: %w", ctx.Err())
	}
}

// IsRunning returns whether the scheduler is running
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// RunAll runs every registered task once, in registration order. Used by
// tooling and tests; errors are logged, not returned.
func (s *Scheduler) RunAll(ctx context.Context) {
	s.mu.Lock()
	tasks := append([]Task(nil), s.tasks...)
	s.mu.Unlock()

	for _, task := range tasks {
		s.runTask(ctx, task)
	}
}

func (s *Scheduler) runTask(ctx context.Context, task Task) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	if err := task.Run(ctx); err != nil {
		s.logger.ErrorContext(ctx, "task failed",
			slog.String("task", task.Name()),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return
	}
	s.logger.DebugContext(ctx, "task finished",
		slog.String("task", task.Name()),
		slog.Duration("duration", time.Since(start)),
	)
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
