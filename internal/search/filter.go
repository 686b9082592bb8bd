package search

import (
	"strings"
	"time"

	"github.com/fuzball1989/job-posting-portal/internal/model"
)

// Params are the recognized public search parameters. Zero values mean
// "no constraint"; pointer fields distinguish unset from false/zero.
type Params struct {
	Search           string
	CategoryID       string
	Location         string
	RemoteTypes      []model.RemoteType
	EmploymentTypes  []model.EmploymentType
	ExperienceLevels []model.ExperienceLevel
	SalaryMin        *int64
	SalaryMax        *int64
	CompanyID        string
	IsFeatured       *bool
	IsUrgent         *bool
	PostedWithinDays int

	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// BuildFilter translates params into a predicate over jobs. The result always
// starts with status = active; every other constraint is ANDed on.
func BuildFilter(p Params) And {
	return BuildFilterAt(p, time.Now())
}

// BuildFilterAt is BuildFilter with an explicit clock for postedWithin.
func BuildFilterAt(p Params, now time.Time) And {
	filter := And{Eq(FieldStatus, model.JobActive)}

	if term := strings.TrimSpace(p.Search); term != "" {
		filter = append(filter, Or{
			ContainsFold(FieldTitle, term),
			ContainsFold(FieldDescription, term),
			ContainsFold(FieldCompanyName, term),
			Has(FieldSkills, term),
		})
	}
	if p.CategoryID != "" {
		filter = append(filter, Eq(FieldCategoryID, p.CategoryID))
	}
	if loc := strings.TrimSpace(p.Location); loc != "" {
		filter = append(filter, ContainsFold(FieldLocation, loc))
	}
	if len(p.RemoteTypes) > 0 {
		filter = append(filter, In(FieldRemoteType, p.RemoteTypes))
	}
	if len(p.EmploymentTypes) > 0 {
		filter = append(filter, In(FieldEmploymentType, p.EmploymentTypes))
	}
	if len(p.ExperienceLevels) > 0 {
		filter = append(filter, In(FieldExperienceLevel, p.ExperienceLevels))
	}

	// Salary bounds are range-overlap tests: the searcher's floor must be
	// reachable by the job's ceiling and vice versa.
	if p.SalaryMin != nil {
		filter = append(filter, Gte(FieldSalaryMax, *p.SalaryMin))
	}
	if p.SalaryMax != nil {
		filter = append(filter, Lte(FieldSalaryMin, *p.SalaryMax))
	}

	if p.CompanyID != "" {
		filter = append(filter, Eq(FieldCompanyID, p.CompanyID))
	}
	if p.IsFeatured != nil {
		filter = append(filter, Eq(FieldIsFeatured, *p.IsFeatured))
	}
	if p.IsUrgent != nil {
		filter = append(filter, Eq(FieldIsUrgent, *p.IsUrgent))
	}
	if p.PostedWithinDays > 0 {
		filter = append(filter, Gte(FieldCreatedAt, now.AddDate(0, 0, -p.PostedWithinDays)))
	}

	return filter
}

// Query is a fully resolved search: filter, ordering and page window.
type Query struct {
	Filter Predicate
	Sort   Sort
	Offset int
	Limit  int
}

// NewQuery resolves params into a Query.
func NewQuery(p Params) Query {
	return Query{
		Filter: BuildFilter(p),
		Sort:   ResolveSort(p.SortBy, p.SortOrder),
		Offset: Offset(p.Page, p.Limit),
		Limit:  p.Limit,
	}
}
