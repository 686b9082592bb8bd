package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field, dir string
		want       Sort
	}{
		{"", "", Sort{Field: SortCreatedAt, Desc: true}},
		{"bogus_field", "asc", Sort{Field: SortCreatedAt, Desc: true}},
		{"createdAt", "asc", Sort{Field: SortCreatedAt}},
		{"title", "ASC", Sort{Field: SortTitle}},
		{"title", "sideways", Sort{Field: SortTitle, Desc: true}},
		{"salaryMin", "desc", Sort{Field: SortSalaryMin, Desc: true}},
		{"salaryMax", "asc", Sort{Field: SortSalaryMax}},
		{"viewsCount", "", Sort{Field: SortViewsCount, Desc: true}},
		{"applicationsCount", "asc", Sort{Field: SortApplicationsCount}},
		{"password_hash", "asc", DefaultSort},
	}
	for _, tt := range tests {
		t.Run(tt.field+"/"+tt.dir, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSort(tt.field, tt.dir))
		})
	}
}

func TestIsSortable(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSortable("viewsCount"))
	assert.False(t, IsSortable("views_count"))
}
