package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fuzball1989/job-posting-portal/internal/model"
	"github.com/fuzball1989/job-posting-portal/pkg/jwt"
)

// SessionStore records live refresh token ids. Each id is single use.
type SessionStore interface {
	// Save records tokenID for userID, expiring after ttl.
	Save(ctx context.Context, userID, tokenID string, ttl time.Duration) error
	// Consume removes tokenID and reports whether it was present.
	Consume(ctx context.Context, userID, tokenID string) (bool, error)
	// RevokeUser removes every session of userID.
	RevokeUser(ctx context.Context, userID string) error
}

// TokenService issues token pairs and handles refresh rotation
type TokenService struct {
	jwt      *jwt.Service
	sessions SessionStore
}

// TokenServiceConfig holds configuration for the token service
type TokenServiceConfig struct {
	JWT      *jwt.Service
	Sessions SessionStore
}

// NewTokenService creates a new token service
func NewTokenService(cfg TokenServiceConfig) *TokenService {
	return &TokenService{
		jwt:      cfg.JWT,
		sessions: cfg.Sessions,
	}
}

// Issue creates an access/refresh pair for identity and records the refresh
// token's id.
func (s *TokenService) Issue(ctx context.Context, identity model.Identity) (*model.TokenPair, error) {
	access, err := s.jwt.SignAccess(identity.ID, identity.Email, identity.Role.String())
	if err != nil {
		return nil, err
	}

	tokenID := uuid.NewString()
	refresh, _, err := s.jwt.SignRefresh(identity.ID, tokenID)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, identity.ID, tokenID, s.jwt.RefreshTTL()); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &model.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.jwt.AccessTTL().Seconds()),
	}, nil
}

// VerifyAccess validates an access token.
func (s *TokenService) VerifyAccess(token string) (*jwt.AccessClaims, error) {
	claims, err := s.jwt.ValidateAccess(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

// VerifyRefresh validates a refresh token without consuming it.
func (s *TokenService) VerifyRefresh(token string) (*jwt.RefreshClaims, error) {
	claims, err := s.jwt.ValidateRefresh(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRefreshToken, err)
	}
	return claims, nil
}

// Consume validates a refresh token and spends its id, returning the subject.
// A validly signed token whose id is no longer live has been replayed; every
// session of the subject is revoked.
func (s *TokenService) Consume(ctx context.Context, token string) (string, error) {
	claims, err := s.VerifyRefresh(token)
	if err != nil {
		return "", err
	}

	ok, err := s.sessions.Consume(ctx, claims.Subject, claims.TokenID())
	if err != nil {
		return "", fmt.Errorf("consume session: %w", err)
	}
	if !ok {
		if err := s.sessions.RevokeUser(ctx, claims.Subject); err != nil {
			return "", errors.Join(ErrRefreshTokenReused, err)
		}
		return "", ErrRefreshTokenReused
	}
	return claims.Subject, nil
}

// RevokeAll removes every refresh session of userID.
func (s *TokenService) RevokeAll(ctx context.Context, userID string) error {
	return s.sessions.RevokeUser(ctx, userID)
}
