package store

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuzball1989/job-posting-portal/internal/config"
	"github.com/fuzball1989/job-posting-portal/internal/model"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestOpen_Memory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	b, err := Open(ctx, config.DatabaseConfig{Driver: DriverMemory}, discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	assert.Equal(t, DriverMemory, b.Driver)
	require.NoError(t, b.Ping(ctx))

	user := &model.User{Email: "a@example.com", FirstName: "A", LastName: "B", Role: model.RoleEmployer, IsActive: true}
	require.NoError(t, b.Users.Create(ctx, user, nil))

	got, err := b.Users.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
}

func TestOpen_UnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), config.DatabaseConfig{Driver: "sqlite"}, discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}
