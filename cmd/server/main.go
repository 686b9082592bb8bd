package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fuzball1989/job-posting-portal/internal/config"
	"github.com/fuzball1989/job-posting-portal/internal/handler"
	"github.com/fuzball1989/job-posting-portal/internal/middleware"
	"github.com/fuzball1989/job-posting-portal/internal/repository/memory"
	"github.com/fuzball1989/job-posting-portal/internal/repository/redisstore"
	"github.com/fuzball1989/job-posting-portal/internal/scheduler"
	"github.com/fuzball1989/job-posting-portal/internal/service"
	"github.com/fuzball1989/job-posting-portal/internal/store"
	"github.com/fuzball1989/job-posting-portal/pkg/jwt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.JWT.Secret == config.DevJWTSecret {
		slog.Warn("using the development JWT secret; set JWT_SECRET")
	}

	ctx := context.Background()

	// Initialize the job store
	backend, err := store.Open(ctx, cfg.Database, logger)
	if err != nil {
		slog.Error("failed to open store", slog.String("driver", cfg.Database.Driver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = backend.Close() }()
	slog.Info("store ready", slog.String("driver", backend.Driver))

	healthChecks := map[string]handler.Pinger{"database": backend}

	// Initialize refresh sessions: Redis when configured, else process memory
	var (
		sessions    service.SessionStore
		memSessions *memory.SessionStore
	)
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = redisClient.Close() }()

		redisSessions := redisstore.New(redisClient, redisstore.WithLogger(logger))
		if err := redisSessions.Ping(ctx); err != nil {
			slog.Error("failed to connect to redis", slog.String("addr", cfg.Redis.Addr), slog.String("error", err.Error()))
			os.Exit(1)
		}
		sessions = redisSessions
		healthChecks["redis"] = redisSessions
		slog.Info("connected to redis", slog.String("addr", cfg.Redis.Addr))
	} else {
		memSessions = memory.NewSessionStore()
		sessions = memSessions
	}

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		AccessTTL:  cfg.JWT.AccessTTL,
		RefreshTTL: cfg.JWT.RefreshTTL,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize services
	tokenService := service.NewTokenService(service.TokenServiceConfig{
		JWT:      jwtService,
		Sessions: sessions,
	})
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:       backend.Users,
		MembershipRepo: backend.Memberships,
		TokenService:   tokenService,
	})
	policy := service.NewPolicy(service.PolicyConfig{
		UserRepo:       backend.Users,
		MembershipRepo: backend.Memberships,
		JobRepo:        backend.Jobs,
	})
	jobService := service.NewJobService(service.JobServiceConfig{
		JobRepo:      backend.Jobs,
		CategoryRepo: backend.Categories,
		Policy:       policy,
		Logger:       logger,
	})
	categoryService := service.NewCategoryService(backend.Categories)

	// Rate limiting
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(middleware.RateLimitConfig{
			RPS:   cfg.RateLimit.RPS,
			Burst: cfg.RateLimit.Burst,
		})
		defer rateLimiter.Stop()
	}

	// Background tasks
	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched = scheduler.New(scheduler.Config{Logger: logger})
		if err := sched.Add(cfg.Scheduler.DeadlineSpec, scheduler.NewDeadlineCloser(jobService, logger)); err != nil {
			slog.Error("failed to schedule deadline closer", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if memSessions != nil {
			if err := sched.Add(cfg.Scheduler.SessionSweepSpec, scheduler.NewSessionSweep(memSessions, logger)); err != nil {
				slog.Error("failed to schedule session sweep", slog.String("error", err.Error()))
				os.Exit(1)
			}
		}
		sched.Start()
	}

	router := handler.NewRouter(handler.RouterConfig{
		AuthService:     authService,
		JobService:      jobService,
		CategoryService: categoryService,
		HealthChecks:    healthChecks,
		Logger:          logger,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		RateLimiter:     rateLimiter,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-quit:
		slog.Info("shutting down server...", slog.String("signal", sig.String()))
	case err := <-serverErr:
		slog.Error("server error", slog.String("error", err.Error()))
		exitCode = 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}
	if sched != nil {
		if err := sched.Stop(shutdownCtx); err != nil {
			slog.Error("scheduler did not stop cleanly", slog.String("error", err.Error()))
		}
	}

	slog.Info("server exited")
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
