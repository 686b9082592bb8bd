// Package redisstore keeps refresh token sessions in Redis so that several
// API instances share rotation state. Each live token id is its own key
// with the token's TTL; a per-user Set indexes them for revocation.
//
// Usage:
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	sessions := redisstore.New(client)
//	if err := sessions.Ping(ctx); err != nil { ... }
package redisstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fuzball1989/job-posting-portal/internal/service"
)

var _ service.SessionStore = (*SessionStore)(nil)

// Option configures the SessionStore.
type Option func(*SessionStore)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *SessionStore) { s.logger = l }
}

// SessionStore implements service.SessionStore on Redis.
type SessionStore struct {
	client redis.Cmdable
	logger *slog.Logger
}

// New creates a Redis-backed session store. The caller owns the client
// lifecycle.
func New(client redis.Cmdable, opts ...Option) *SessionStore {
	s := &SessionStore{client: client, logger: slog.Default()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Ping verifies the Redis connection is alive.
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Save records tokenID for userID until ttl elapses.
func (s *SessionStore) Save(ctx context.Context, userID, tokenID string, ttl time.Duration) error {
	index := userSessionsKey(userID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sessionKey(userID, tokenID), 1, ttl)
		pipe.SAdd(ctx, index, tokenID)
		pipe.Expire(ctx, index, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redisstore: save session: %w", err)
	}
	return nil
}

// Consume deletes tokenID and reports whether it was live. DEL is atomic, so
// of two concurrent consumers exactly one sees true.
func (s *SessionStore) Consume(ctx context.Context, userID, tokenID string) (bool, error) {
	n, err := s.client.Del(ctx, sessionKey(userID, tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("redisstore: consume session: %w", err)
	}
	if err := s.client.SRem(ctx, userSessionsKey(userID), tokenID).Err(); err != nil {
		s.logger.Warn("failed to prune session index", "user_id", userID, "error", err)
	}
	return n == 1, nil
}

// RevokeUser deletes every session of userID.
func (s *SessionStore) RevokeUser(ctx context.Context, userID string) error {
	index := userSessionsKey(userID)
	ids, err := s.client.SMembers(ctx, index).Result()
	if err != nil {
		return fmt.Errorf("redisstore: list sessions: %w", err)
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKey(userID, id))
	}
	keys = append(keys, index)

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redisstore: revoke sessions: %w", err)
	}
	s.logger.Info("sessions revoked", "user_id", userID, "count", len(ids))
	return nil
}

// Count returns the number of live sessions of userID.
func (s *SessionStore) Count(ctx context.Context, userID string) (int, error) {
	ids, err := s.client.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = sessionKey(userID, id)
	}
	n, err := s.client.Exists(ctx, keys...).Result()
	return int(n), err
}
