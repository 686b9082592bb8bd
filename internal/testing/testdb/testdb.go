package testdb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	pgmodule "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/fuzball1989/job-posting-portal/internal/database"
)

// TestDB is one isolated, migrated database.
type TestDB struct {
	DB   *database.DB
	Name string
	t    *testing.T
}

var (
	serverOnce sync.Once
	serverDSN  string
	serverErr  error

	counter atomic.Int64
)

// server returns the DSN of the postgres server, starting a container on
// first use.
func server() (string, error) {
	serverOnce.Do(func() {
		if dsn := os.Getenv("TEST_DATABASE_URL"); dsn != "" {
			serverDSN = dsn
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		container, err := pgmodule.Run(ctx,
			"postgres:16-alpine",
			pgmodule.WithDatabase("jobs_test"),
			pgmodule.WithUsername("test"),
			pgmodule.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			serverErr = fmt.Errorf("start postgres container: %w", err)
			return
		}
		serverDSN, serverErr = container.ConnectionString(ctx, "sslmode=disable")
	})
	return serverDSN, serverErr
}

// withDatabase swaps the database name in a postgres URL.
func withDatabase(dsn, name string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("parse dsn: %w", err)
	}
	u.Path = "/" + name
	return u.String(), nil
}

func admin(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Discard,
	})
}

// New creates a new migrated database. It is dropped when the test ends.
func New(t *testing.T) *TestDB {
	t.Helper()

	dsn, err := server()
	if err != nil {
		t.Fatalf("testdb: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	name := fmt.Sprintf("test_%d_%d", time.Now().UnixNano(), counter.Add(1))

	adminDB, err := admin(dsn)
	if err != nil {
		t.Fatalf("testdb: failed to connect: %v", err)
	}
	if err := adminDB.WithContext(ctx).Exec("CREATE DATABASE " + name).Error; err != nil {
		t.Fatalf("testdb: failed to create database: %v", err)
	}

	testDSN, err := withDatabase(dsn, name)
	if err != nil {
		t.Fatalf("testdb: %v", err)
	}

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := database.Open(ctx, database.Config{DSN: testDSN, MaxOpenConns: 5, AutoMigrate: true}, quiet)
	if err != nil {
		t.Fatalf("testdb: failed to open: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
		dropCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := adminDB.WithContext(dropCtx).Exec("DROP DATABASE IF EXISTS " + name + " WITH (FORCE)").Error; err != nil {
			t.Logf("testdb: warning - failed to drop %s: %v", name, err)
		}
		if sqlDB, err := adminDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return &TestDB{DB: db, Name: name, t: t}
}

// Reset truncates every table while preserving schema.
func (tdb *TestDB) Reset(t *testing.T) {
	t.Helper()

	tables := []string{"job_applications", "jobs", "job_categories", "company_memberships", "companies", "user_profiles", "users"}
	stmt := "TRUNCATE " + strings.Join(tables, ", ") + " CASCADE"
	if err := tdb.DB.Gorm(tdb.Ctx()).Exec(stmt).Error; err != nil {
		t.Fatalf("testdb: failed to reset: %v", err)
	}
}

// Ctx returns a context with a reasonable timeout for test operations.
func (tdb *TestDB) Ctx() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	tdb.t.Cleanup(cancel)
	return ctx
}

// Shared is a TestDB reused across subtests.
type Shared struct {
	*TestDB
}

// NewShared creates a shared test database for use across multiple subtests.
func NewShared(t *testing.T) *Shared {
	return &Shared{TestDB: New(t)}
}

// SetupSubtest resets the database and returns the TestDB for use in a
// subtest. Call this at the start of each t.Run() block.
func (s *Shared) SetupSubtest(t *testing.T) *TestDB {
	t.Helper()
	s.TestDB.t = t
	s.TestDB.Reset(t)
	return s.TestDB
}
