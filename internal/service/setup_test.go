package service

import (
	"io"
	"log/slog"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/fuzball1989/job-posting-portal/internal/repository/memory"
	"github.com/fuzball1989/job-posting-portal/internal/testing/fixtures"
	"github.com/fuzball1989/job-posting-portal/internal/testing/helpers"
)

// testEnv wires every service over one in-memory store.
type testEnv struct {
	store    *memory.Store
	sessions *memory.SessionStore
	fx       *fixtures.Factory

	tokens *TokenService
	auth   *AuthService
	policy *Policy
	jobs   *JobService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.New()
	sessions := memory.NewSessionStore()

	tokens := NewTokenService(TokenServiceConfig{
		JWT:      helpers.NewTestJWTService(t),
		Sessions: sessions,
	})
	auth := NewAuthService(AuthServiceConfig{
		UserRepo:       store.Users(),
		MembershipRepo: store.Memberships(),
		TokenService:   tokens,
		BcryptCost:     bcrypt.MinCost,
	})
	policy := NewPolicy(PolicyConfig{
		UserRepo:       store.Users(),
		MembershipRepo: store.Memberships(),
		JobRepo:        store.Jobs(),
	})
	jobs := NewJobService(JobServiceConfig{
		JobRepo:      store.Jobs(),
		CategoryRepo: store.Categories(),
		Policy:       policy,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &testEnv{
		store:    store,
		sessions: sessions,
		fx:       fixtures.New(fixtures.FromMemory(store)),
		tokens:   tokens,
		auth:     auth,
		policy:   policy,
		jobs:     jobs,
	}
}

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }
