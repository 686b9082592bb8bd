package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuzball1989/job-posting-portal/internal/model"
	"github.com/fuzball1989/job-posting-portal/internal/search"
)

func TestCompilePredicate_EmptyParams(t *testing.T) {
	t.Parallel()

	sql, args, err := compilePredicate(search.BuildFilter(search.Params{}))
	require.NoError(t, err)
	assert.Equal(t, "(jobs.status = ?)", sql)
	assert.Equal(t, []any{model.JobActive}, args)
}

func TestCompilePredicate_Search(t *testing.T) {
	t.Parallel()

	sql, args, err := compilePredicate(search.BuildFilter(search.Params{Search: "50%_off"}))
	require.NoError(t, err)
	assert.Equal(t,
		`(jobs.status = ? AND (jobs.title ILIKE ? ESCAPE '\' OR jobs.description ILIKE ? ESCAPE '\' OR companies.name ILIKE ? ESCAPE '\' OR ? = ANY(jobs.skills_required)))`,
		sql)
	assert.Equal(t, []any{model.JobActive, `%50\%\_off%`, `%50\%\_off%`, `%50\%\_off%`, "50%_off"}, args)
}

func TestCompilePredicate_SetsAndBounds(t *testing.T) {
	t.Parallel()

	floor := int64(100000)
	p := search.BuildFilter(search.Params{
		RemoteTypes: []model.RemoteType{model.RemoteRemote, model.RemoteHybrid},
		SalaryMin:   &floor,
	})

	sql, args, err := compilePredicate(p)
	require.NoError(t, err)
	assert.Equal(t, "(jobs.status = ? AND jobs.remote_type IN ? AND jobs.salary_max >= ?)", sql)
	require.Len(t, args, 3)
	assert.Equal(t, []any{model.RemoteRemote, model.RemoteHybrid}, args[1])
	assert.Equal(t, floor, args[2])
}

func TestCompilePredicate_EmptyGroups(t *testing.T) {
	t.Parallel()

	sql, _, err := compilePredicate(search.And{})
	require.NoError(t, err)
	assert.Equal(t, "TRUE", sql)

	sql, _, err = compilePredicate(search.Or{})
	require.NoError(t, err)
	assert.Equal(t, "FALSE", sql)

	sql, _, err = compilePredicate(search.In(search.FieldRemoteType, []model.RemoteType{}))
	require.NoError(t, err)
	assert.Equal(t, "FALSE", sql)
}

func TestCompilePredicate_UnknownField(t *testing.T) {
	t.Parallel()

	_, _, err := compilePredicate(search.Eq("password_hash", "x"))
	assert.Error(t, err)
}

func TestOrderClause(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "jobs.created_at DESC NULLS LAST, jobs.id", orderClause(search.DefaultSort))
	assert.Equal(t, "jobs.salary_min ASC NULLS LAST, jobs.id", orderClause(search.ResolveSort("salaryMin", "asc")))
	assert.Equal(t, "applications_count DESC NULLS LAST, jobs.id", orderClause(search.ResolveSort("applicationsCount", "desc")))
	assert.Equal(t, "jobs.created_at ASC NULLS LAST, jobs.id", orderClause(search.Sort{Field: "bogus"}))
}

func TestContainsPattern(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "%go%", containsPattern("go"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
}

func TestIsUUID(t *testing.T) {
	t.Parallel()

	assert.True(t, isUUID("6f1c1f58-4a55-4f39-8a3e-2f8a9b1d2c3e"))
	assert.False(t, isUUID("not-a-uuid"))
	assert.False(t, isUUID(""))
}
