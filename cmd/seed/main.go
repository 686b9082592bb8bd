package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fuzball1989/job-posting-portal/internal/config"
	"github.com/fuzball1989/job-posting-portal/internal/service"
	"github.com/fuzball1989/job-posting-portal/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.IsProduction() {
		slog.Error("refusing to seed demo accounts in production")
		os.Exit(1)
	}
	if cfg.UsesMemoryStore() {
		slog.Warn("DB_DRIVER=memory: seeded data is discarded when this command exits")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	backend, err := store.Open(ctx, cfg.Database, logger)
	if err != nil {
		slog.Error("failed to open store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = backend.Close() }()

	seeder := service.NewSeederService(service.SeederConfig{
		Users:       backend.Users,
		Companies:   backend.Companies,
		Categories:  backend.Categories,
		Memberships: backend.Memberships,
		Jobs:        backend.Jobs,
		Logger:      logger,
	})

	result, err := seeder.Seed(ctx)
	if err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("\nSeeded %d categories, %d companies, %d users, %d memberships, %d jobs in %dms\n",
		result.Categories, result.Companies, result.Users, result.Memberships, result.Jobs, result.Duration)
	fmt.Println("\nDemo accounts:")
	for _, acct := range service.SeedAccounts {
		fmt.Printf("  %-10s %s / %s\n", acct.Role.String()+":", acct.Email, acct.Password)
	}
}
