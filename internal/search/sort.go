package search

import "strings"

// Sortable fields, named as they appear on the wire.
const (
	SortCreatedAt         = "createdAt"
	SortTitle             = "title"
	SortSalaryMin         = "salaryMin"
	SortSalaryMax         = "salaryMax"
	SortViewsCount        = "viewsCount"
	SortApplicationsCount = "applicationsCount"
)

var sortable = map[string]bool{
	SortCreatedAt:         true,
	SortTitle:             true,
	SortSalaryMin:         true,
	SortSalaryMax:         true,
	SortViewsCount:        true,
	SortApplicationsCount: true,
}

// Sort is a resolved ordering.
type Sort struct {
	Field string
	Desc  bool
}

// DefaultSort is newest first.
var DefaultSort = Sort{Field: SortCreatedAt, Desc: true}

// ResolveSort validates a requested ordering.
//
// An unknown field is not an error: the request silently falls back to
// DefaultSort, including its direction. Clients rely on this to pass
// arbitrary sort keys from the UI. For a known field, anything other than
// "asc" sorts descending.
func ResolveSort(field, direction string) Sort {
	if !IsSortable(field) {
		return DefaultSort
	}
	return Sort{Field: field, Desc: !strings.EqualFold(direction, "asc")}
}

// IsSortable reports whether field is in the sort whitelist.
func IsSortable(field string) bool {
	return sortable[field]
}
