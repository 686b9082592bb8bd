// Package config loads and validates configuration for the jobs API.
//
// Values come from environment variables. When a .env file exists in the
// working directory it is read first; variables already set win.
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
//   - ServerConfig: port, environment, timeouts, CORS origins
//   - DatabaseConfig: DB_DRIVER (postgres or memory), DATABASE_URL, pool
//   - RedisConfig: REDIS_ADDR; empty keeps refresh sessions in memory
//   - JWTConfig: JWT_SECRET, JWT_ISSUER, JWT_ACCESS_TTL, JWT_REFRESH_TTL
//   - RateLimitConfig: RATE_LIMIT_RPS, RATE_LIMIT_BURST
//   - SchedulerConfig: cron specs for the deadline closer and session sweep
//
// Validate reports every problem at once via errors.Join.
package config
