package handler

import (
	"log/slog"
	"net/http"

	"github.com/fuzball1989/job-posting-portal/internal/middleware"
	"github.com/fuzball1989/job-posting-portal/internal/model"
	"github.com/fuzball1989/job-posting-portal/internal/service"
)

// RouterConfig holds everything the HTTP surface depends on
type RouterConfig struct {
	AuthService     *service.AuthService
	JobService      *service.JobService
	CategoryService *service.CategoryService
	HealthChecks    map[string]Pinger
	Logger          *slog.Logger
	AllowedOrigins  []string
	RateLimiter     *middleware.RateLimiter // nil disables rate limiting
}

// NewRouter registers every route and wraps the mux in the global
// middleware stack.
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	requireAuth := middleware.Auth(cfg.AuthService)
	optionalAuth := middleware.OptionalAuth(cfg.AuthService)
	employerOnly := func(next http.Handler) http.Handler {
		return requireAuth(middleware.RequireRole(model.RoleEmployer)(next))
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", NewHealthHandler(cfg.HealthChecks).Health)

	NewAuthHandler(cfg.AuthService).RegisterRoutes(mux, requireAuth)
	NewCategoryHandler(cfg.CategoryService).RegisterRoutes(mux)
	NewJobHandler(cfg.JobService).RegisterRoutes(mux, JobRouteGuards{
		Optional: optionalAuth,
		Employer: employerOnly,
	})

	stack := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(cfg.Logger),
		middleware.Recovery(cfg.Logger),
		middleware.CORS(cfg.AllowedOrigins),
	}
	if cfg.RateLimiter != nil {
		stack = append(stack, middleware.RateLimit(cfg.RateLimiter))
	}
	stack = append(stack, middleware.Compress)

	return middleware.Chain(mux, stack...)
}
