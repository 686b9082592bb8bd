package scheduler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Fakes
// ============================================================================

type funcTask struct {
	name string
	run  func(ctx context.Context) error
}

func (f funcTask) Name() string                  { return f.name }
func (f funcTask) Run(ctx context.Context) error { return f.run(ctx) }

type fakeCloser struct {
	closed int64
	err    error
	calls  atomic.Int32
}

func (f *fakeCloser) CloseExpiredJobs(context.Context) (int64, error) {
	f.calls.Add(1)
	return f.closed, f.err
}

type fakeSweeper struct {
	swept int
	err   error
}

func (f *fakeSweeper) Sweep(context.Context) (int, error) { return f.swept, f.err }

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// ============================================================================
// Scheduler
// ============================================================================

func TestScheduler_AddRejectsBadSpec(t *testing.T) {
	t.Parallel()
	s := New(Config{Logger: discard()})

	err := s.Add("not a cron spec", funcTask{name: "bad", run: func(context.Context) error { return nil }})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
}

func TestScheduler_RunsOnSchedule(t *testing.T) {
	t.Parallel()
	s := New(Config{Logger: discard()})

	ran := make(chan struct{}, 1)
	require.NoError(t, s.Add("@every 1s", funcTask{name: "tick", run: func(context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	}}))

	s.Start()
	s.Start()
	assert.True(t, s.IsRunning())

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("task did not run")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.False(t, s.IsRunning())
	require.NoError(t, s.Stop(ctx))
}

func TestScheduler_RunAllLogsFailures(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := New(Config{Logger: slog.New(slog.NewJSONHandler(&buf, nil))})

	var order []string
	require.NoError(t, s.Add("@hourly", funcTask{name: "first", run: func(context.Context) error {
		order = append(order, "first")
		return errors.New("database unavailable")
	}}))
	require.NoError(t, s.Add("@hourly", funcTask{name: "second", run: func(context.Context) error {
		order = append(order, "second")
		return nil
	}}))

	s.RunAll(context.Background())

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Contains(t, buf.String(), "database unavailable")
	assert.Contains(t, buf.String(), `"task":"first"`)
}

func TestScheduler_RunHasDeadline(t *testing.T) {
	t.Parallel()
	s := New(Config{Logger: discard(), Timeout: 50 * time.Millisecond})

	var hadDeadline bool
	s.runTask(context.Background(), funcTask{name: "deadline", run: func(ctx context.Context) error {
		_, hadDeadline = ctx.Deadline()
		return nil
	}})

	assert.True(t, hadDeadline)
}

// ============================================================================
// Tasks
// ============================================================================

func TestDeadlineCloser(t *testing.T) {
	t.Parallel()

	closer := &fakeCloser{closed: 3}
	task := NewDeadlineCloser(closer, discard())

	assert.Equal(t, "close-expired-jobs", task.Name())
	require.NoError(t, task.Run(context.Background()))
	assert.Equal(t, int32(1), closer.calls.Load())

	closer.err = errors.New("boom")
	assert.EqualError(t, task.Run(context.Background()), "boom")
}

func TestSessionSweep(t *testing.T) {
	t.Parallel()

	task := NewSessionSweep(&fakeSweeper{swept: 2}, discard())
	assert.Equal(t, "sweep-sessions", task.Name())
	require.NoError(t, task.Run(context.Background()))

	failing := NewSessionSweep(&fakeSweeper{err: errors.New("nope")}, nil)
	assert.Error(t, failing.Run(context.Background()))
}
