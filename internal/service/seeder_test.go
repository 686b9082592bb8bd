package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fuzball1989/job-posting-portal/internal/model"
)

func newTestSeeder(env *testEnv) *SeederService {
	return NewSeederService(SeederConfig{
		Users:       env.store.Users(),
		Companies:   env.store.Companies(),
		Categories:  env.store.Categories(),
		Memberships: env.store.Memberships(),
		Jobs:        env.store.Jobs(),
		BcryptCost:  bcrypt.MinCost,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestSeeder_Seed(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	result, err := newTestSeeder(env).Seed(ctx)
	require.NoError(t, err)

	assert.Equal(t, len(seedCategories), result.Categories)
	assert.Equal(t, len(seedCompanies), result.Companies)
	assert.Equal(t, len(SeedAccounts), result.Users)
	assert.Equal(t, len(seedMemberships), result.Memberships)
	assert.Equal(t, len(seedJobs), result.Jobs)

	job, err := env.store.Jobs().GetBySlug(ctx, "techcorp-inc", "data-scientist")
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, model.JobActive, job.Status)
	require.NotNil(t, job.CategoryID)

	categories, err := env.store.Categories().ListActiveWithCounts(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, len(seedCategories))
}

func TestSeeder_SeedIsIdempotent(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	seeder := newTestSeeder(env)

	_, err := seeder.Seed(ctx)
	require.NoError(t, err)

	again, err := seeder.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, again.Categories)
	assert.Zero(t, again.Companies)
	assert.Zero(t, again.Users)
	assert.Zero(t, again.Memberships)
	assert.Zero(t, again.Jobs)
}

func TestSeeder_AccountsCanSignIn(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := newTestSeeder(env).Seed(ctx)
	require.NoError(t, err)

	for _, acct := range SeedAccounts {
		resp, err := env.auth.Login(ctx, model.LoginRequest{Email: acct.Email, Password: acct.Password})
		require.NoError(t, err, acct.Email)
		assert.Equal(t, acct.Role, resp.User.Role, acct.Email)
	}
}

func TestSeeder_SeededEmployerCanPost(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := newTestSeeder(env).Seed(ctx)
	require.NoError(t, err)

	employer, err := env.store.Users().GetByEmail(ctx, "employer@techcorp.com")
	require.NoError(t, err)

	job, err := env.jobs.CreateJob(ctx, employer.ID, createReq("Data Scientist"))
	require.NoError(t, err)
	assert.Equal(t, "data-scientist-1", job.Slug)
}
