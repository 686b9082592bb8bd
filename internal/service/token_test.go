package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fuzball1989/job-posting-portal/internal/model"
	"github.com/fuzball1989/job-posting-portal/internal/repository/memory"
	"github.com/fuzball1989/job-posting-portal/internal/testing/helpers"
	"github.com/fuzball1989/job-posting-portal/pkg/jwt"
)

func setupTokenService(t *testing.T) (*TokenService, *memory.SessionStore) {
	t.Helper()
	sessions := memory.NewSessionStore()
	return NewTokenService(TokenServiceConfig{
		JWT:      helpers.NewTestJWTService(t),
		Sessions: sessions,
	}), sessions
}

var testIdentity = model.Identity{
	ID:    "11111111-1111-1111-1111-111111111111",
	Email: "emp@example.com",
	Role:  model.RoleEmployer,
}

func TestTokenService_Issue(t *testing.T) {
	ts, sessions := setupTokenService(t)
	ctx := context.Background()

	pair, err := ts.Issue(ctx, testIdentity)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if pair.TokenType != "Bearer" {
		t.Errorf("expected token type Bearer, got %s", pair.TokenType)
	}
	if pair.ExpiresIn != int64(time.Hour.Seconds()) {
		t.Errorf("expected expiresIn 3600, got %d", pair.ExpiresIn)
	}
	if strings.Count(pair.AccessToken, ".") != 2 || strings.Count(pair.RefreshToken, ".") != 2 {
		t.Error("expected compact JWS tokens")
	}
	if n := sessions.Count(testIdentity.ID); n != 1 {
		t.Errorf("expected 1 session, got %d", n)
	}

	claims, err := ts.VerifyAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("VerifyAccess failed: %v", err)
	}
	if claims.Subject != testIdentity.ID || claims.Email != testIdentity.Email || claims.Role != "employer" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestTokenService_AudienceSeparation(t *testing.T) {
	ts, _ := setupTokenService(t)

	pair, err := ts.Issue(context.Background(), testIdentity)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := ts.VerifyAccess(pair.RefreshToken); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("refresh token accepted as access token: %v", err)
	}
	if _, err := ts.VerifyRefresh(pair.AccessToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Errorf("access token accepted as refresh token: %v", err)
	}
}

func TestTokenService_RejectsForeignSecret(t *testing.T) {
	ts, _ := setupTokenService(t)

	other, err := jwt.NewService(jwt.Config{Secret: "another-secret-another-secret-xx", Issuer: helpers.TestIssuer})
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	token, err := other.SignAccess(testIdentity.ID, testIdentity.Email, "employer")
	if err != nil {
		t.Fatalf("SignAccess failed: %v", err)
	}

	if _, err := ts.VerifyAccess(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Consume_Rotation(t *testing.T) {
	ts, sessions := setupTokenService(t)
	ctx := context.Background()

	first, err := ts.Issue(ctx, testIdentity)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	second, err := ts.Issue(ctx, testIdentity)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	userID, err := ts.Consume(ctx, first.RefreshToken)
	if err != nil {
		t.Fatalf("Consume failed: %v", err)
	}
	if userID != testIdentity.ID {
		t.Errorf("expected subject %s, got %s", testIdentity.ID, userID)
	}
	if n := sessions.Count(testIdentity.ID); n != 1 {
		t.Errorf("expected 1 remaining session, got %d", n)
	}

	// Replaying the spent token revokes everything, including the second
	// session.
	if _, err := ts.Consume(ctx, first.RefreshToken); !errors.Is(err, ErrRefreshTokenReused) {
		t.Fatalf("expected ErrRefreshTokenReused, got %v", err)
	}
	if n := sessions.Count(testIdentity.ID); n != 0 {
		t.Errorf("expected sessions revoked, got %d", n)
	}
	if _, err := ts.Consume(ctx, second.RefreshToken); !errors.Is(err, ErrRefreshTokenReused) {
		t.Errorf("expected revoked session to fail, got %v", err)
	}
}

func TestTokenService_Consume_InvalidToken(t *testing.T) {
	ts, _ := setupTokenService(t)

	if _, err := ts.Consume(context.Background(), "not-a-token"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Errorf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestTokenService_RevokeAll(t *testing.T) {
	ts, sessions := setupTokenService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := ts.Issue(ctx, testIdentity); err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
	}
	if err := ts.RevokeAll(ctx, testIdentity.ID); err != nil {
		t.Fatalf("RevokeAll failed: %v", err)
	}
	if n := sessions.Count(testIdentity.ID); n != 0 {
		t.Errorf("expected 0 sessions, got %d", n)
	}
}
