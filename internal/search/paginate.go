package search

const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100
)

// Offset returns the number of rows to skip for a 1-based page. Range checks
// on page and limit belong to the caller.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

// Pagination describes where a page sits within a result set.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPagination computes page metadata. totalPages is ceil(total/limit).
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
