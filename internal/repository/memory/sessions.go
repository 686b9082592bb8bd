package memory

import (
	"context"
	"sync"
	"time"
)

// SessionStore keeps refresh token ids in memory. Used when no redis
// address is configured.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]map[string]time.Time // user id -> token id -> expiry
	now      func() time.Time
}

// NewSessionStore returns an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]map[string]time.Time),
		now:      time.Now,
	}
}

// SetClock overrides the time source used for expiry.
func (s *SessionStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Save records tokenID for userID until ttl elapses.
func (s *SessionStore) Save(_ context.Context, userID, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens, ok := s.sessions[userID]
	if !ok {
		tokens = make(map[string]time.Time)
		s.sessions[userID] = tokens
	}
	tokens[tokenID] = s.now().Add(ttl)
	return nil
}

// Consume removes tokenID and reports whether it was live.
func (s *SessionStore) Consume(_ context.Context, userID, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens := s.sessions[userID]
	expires, ok := tokens[tokenID]
	if !ok {
		return false, nil
	}
	delete(tokens, tokenID)
	if len(tokens) == 0 {
		delete(s.sessions, userID)
	}
	return s.now().Before(expires), nil
}

// RevokeUser drops every session of userID.
func (s *SessionStore) RevokeUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
	return nil
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *SessionStore) Sweep(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for userID, tokens := range s.sessions {
		for tokenID, expires := range tokens {
			if !now.Before(expires) {
				delete(tokens, tokenID)
				removed++
			}
		}
		if len(tokens) == 0 {
			delete(s.sessions, userID)
		}
	}
	return removed, nil
}

// Count returns the number of live sessions of userID.
func (s *SessionStore) Count(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions[userID])
}
