package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Offset(1, 12))
	assert.Equal(t, 12, Offset(2, 12))
	assert.Equal(t, 990, Offset(100, 10))
}

func TestNewPagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		page, limit        int
		total              int64
		wantPages          int
		wantNext, wantPrev bool
	}{
		{"last page", 3, 10, 25, 3, false, true},
		{"first page", 1, 10, 25, 3, true, false},
		{"middle", 2, 10, 25, 3, true, true},
		{"empty", 1, 12, 0, 0, false, false},
		{"exact fit", 2, 10, 20, 2, false, true},
		{"past the end", 5, 10, 25, 3, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantNext, p.HasNext)
			assert.Equal(t, tt.wantPrev, p.HasPrev)
		})
	}
}
