package database

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Translate(nil))
	assert.ErrorIs(t, Translate(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, Translate(&pgconn.PgError{Code: "23505"}), ErrDuplicate)
	assert.ErrorIs(t, Translate(gorm.ErrDuplicatedKey), ErrDuplicate)

	other := errors.New("syntax error")
	assert.Equal(t, other, Translate(other))
}

func TestModels_DependencyOrder(t *testing.T) {
	t.Parallel()

	models := Models()
	assert.Len(t, models, 7)
	assert.Equal(t, "*model.User", fmt.Sprintf("%T", models[0]))
	assert.Equal(t, "*model.JobApplication", fmt.Sprintf("%T", models[len(models)-1]))
}

// ============================================================================
// Logger
// ============================================================================

func newTestLogger(buf *bytes.Buffer) *Logger {
	log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewLogger(log, 50*time.Millisecond)
}

func TestLogger_ReportsFailures(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := newTestLogger(&buf)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))

	assert.Contains(t, buf.String(), "query failed")
	assert.Contains(t, buf.String(), "SELECT 1")
}

func TestLogger_IgnoresExpectedErrors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := newTestLogger(&buf)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT", 0 }, gorm.ErrRecordNotFound)
	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "INSERT", 0 }, &pgconn.PgError{Code: "23505"})

	assert.Empty(t, buf.String())
}

func TestLogger_ReportsSlowQueries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := newTestLogger(&buf)

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) { return "SELECT pg_sleep(1)", 1 }, nil)

	assert.Contains(t, buf.String(), "slow query")
}

func TestLogger_SilentMode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := newTestLogger(&buf).LogMode(gormlogger.Silent)

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) { return "SELECT", 0 }, errors.New("boom"))
	l.Error(context.Background(), "ignored %d", 1)

	assert.Empty(t, buf.String())
}

func TestLogger_InfoModeLogsEveryQuery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := newTestLogger(&buf).LogMode(gormlogger.Info)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 42", 1 }, nil)

	assert.Contains(t, buf.String(), "SELECT 42")
}
