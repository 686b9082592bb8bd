package handler

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuzball1989/job-posting-portal/internal/model"
)

func TestParseSearchParams_Defaults(t *testing.T) {
	t.Parallel()

	params, errs := parseSearchParams(url.Values{})
	require.Empty(t, errs)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 12, params.Limit)
	assert.Nil(t, params.SalaryMin)
	assert.Nil(t, params.IsFeatured)
	assert.Empty(t, params.RemoteTypes)
}

func TestParseSearchParams_Full(t *testing.T) {
	t.Parallel()
	categoryID := "6f1c2a4e-8d3b-4c5a-9e7f-0a1b2c3d4e5f"
	companyID := "0d9e8f7a-6b5c-4d3e-8f1a-2b3c4d5e6f70"

	q, err := url.ParseQuery("search=+go+&categoryId=" + categoryID + "&location=Berlin&companyId=" + companyID +
		"&remoteType=Remote,HYBRID&employmentType=full_time&employmentType=contract" +
		"&experienceLevel=senior&salaryMin=50000&salaryMax=90000&isFeatured=true&isUrgent=false" +
		"&postedWithin=7&page=2&limit=50&sortBy=salaryMax&sortOrder=asc")
	require.NoError(t, err)

	params, errs := parseSearchParams(q)
	require.Empty(t, errs)

	assert.Equal(t, "go", params.Search)
	assert.Equal(t, categoryID, params.CategoryID)
	assert.Equal(t, "Berlin", params.Location)
	assert.Equal(t, companyID, params.CompanyID)
	assert.Equal(t, []model.RemoteType{model.RemoteRemote, model.RemoteHybrid}, params.RemoteTypes)
	assert.Equal(t, []model.EmploymentType{model.EmploymentFullTime, model.EmploymentContract}, params.EmploymentTypes)
	assert.Equal(t, []model.ExperienceLevel{model.ExperienceSenior}, params.ExperienceLevels)
	require.NotNil(t, params.SalaryMin)
	assert.Equal(t, int64(50000), *params.SalaryMin)
	require.NotNil(t, params.SalaryMax)
	assert.Equal(t, int64(90000), *params.SalaryMax)
	require.NotNil(t, params.IsFeatured)
	assert.True(t, *params.IsFeatured)
	require.NotNil(t, params.IsUrgent)
	assert.False(t, *params.IsUrgent)
	assert.Equal(t, 7, params.PostedWithinDays)
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 50, params.Limit)
	assert.Equal(t, "salaryMax", params.SortBy)
	assert.Equal(t, "asc", params.SortOrder)
}

func TestParseSearchParams_SkipsEmptyFacetParts(t *testing.T) {
	t.Parallel()

	params, errs := parseSearchParams(url.Values{"remoteType": {"remote,, ,"}})
	require.Empty(t, errs)
	assert.Equal(t, []model.RemoteType{model.RemoteRemote}, params.RemoteTypes)
}

func TestParseSearchParams_CollectsAllErrors(t *testing.T) {
	t.Parallel()

	_, errs := parseSearchParams(url.Values{
		"page":           {"-1"},
		"limit":          {"1000"},
		"employmentType": {"full_time,freelance"},
	})

	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	assert.ElementsMatch(t, []string{"page", "limit", "employmentType"}, fields)
}
