// Package store opens the configured persistence backend and exposes its
// repositories behind the service interfaces. The server and the seed
// command both go through Open so they agree on what "postgres" and
// "memory" mean.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fuzball1989/job-posting-portal/internal/config"
	"github.com/fuzball1989/job-posting-portal/internal/database"
	"github.com/fuzball1989/job-posting-portal/internal/repository"
	"github.com/fuzball1989/job-posting-portal/internal/repository/memory"
	"github.com/fuzball1989/job-posting-portal/internal/service"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// slowQueryThreshold is when gorm starts logging queries as slow.
const slowQueryThreshold = 200 * time.Millisecond

// MembershipRepository covers both reads for the policy and writes for
// seeding.
type MembershipRepository interface {
	service.MembershipRepository
	service.SeedMembershipRepository
}

// CategoryRepository covers both reads for listings and writes for seeding.
type CategoryRepository interface {
	service.CategoryRepository
	service.SeedCategoryRepository
}

// Backend is an open store.
type Backend struct {
	Driver      string
	Users       service.UserRepository
	Companies   service.SeedCompanyRepository
	Memberships MembershipRepository
	Categories  CategoryRepository
	Jobs        service.JobRepository

	ping  func(ctx context.Context) error
	close func() error
}

// Open connects to the backend named by cfg.Driver.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Backend, error) {
	switch cfg.Driver {
	case DriverMemory:
		return Memory(memory.New()), nil
	case DriverPostgres:
		db, err := database.Open(ctx, database.Config{
			DSN:             cfg.URL,
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
			SlowThreshold:   slowQueryThreshold,
			AutoMigrate:     cfg.AutoMigrate,
		}, logger)
		if err != nil {
			return nil, err
		}
		return Postgres(db), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// Memory wraps an in-memory store.
func Memory(s *memory.Store) *Backend {
	return &Backend{
		Driver:      DriverMemory,
		Users:       s.Users(),
		Companies:   s.Companies(),
		Memberships: s.Memberships(),
		Categories:  s.Categories(),
		Jobs:        s.Jobs(),
		ping:        s.Ping,
		close:       s.Close,
	}
}

// Postgres wraps an open database handle.
func Postgres(db *database.DB) *Backend {
	return &Backend{
		Driver:      DriverPostgres,
		Users:       repository.NewUserRepository(db),
		Companies:   repository.NewCompanyRepository(db),
		Memberships: repository.NewMembershipRepository(db),
		Categories:  repository.NewCategoryRepository(db),
		Jobs:        repository.NewJobRepository(db),
		ping:        db.Ping,
		close:       db.Close,
	}
}

// Ping checks the backend is reachable.
func (b *Backend) Ping(ctx context.Context) error {
	return b.ping(ctx)
}

// Close releases the backend's resources.
func (b *Backend) Close() error {
	return b.close()
}
