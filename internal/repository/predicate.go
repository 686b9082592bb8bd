package repository

import (
	"fmt"
	"strings"

	"github.com/fuzball1989/job-posting-portal/internal/search"
)

// jobColumns maps search fields to SQL. company.name requires the companies
// join added by JobRepository.Search.
var jobColumns = map[search.Field]string{
	search.FieldStatus:          "jobs.status",
	search.FieldTitle:           "jobs.title",
	search.FieldDescription:     "jobs.description",
	search.FieldCompanyName:     "companies.name",
	search.FieldSkills:          "jobs.skills_required",
	search.FieldCategoryID:      "jobs.category_id",
	search.FieldLocation:        "jobs.location",
	search.FieldRemoteType:      "jobs.remote_type",
	search.FieldEmploymentType:  "jobs.employment_type",
	search.FieldExperienceLevel: "jobs.experience_level",
	search.FieldSalaryMin:       "jobs.salary_min",
	search.FieldSalaryMax:       "jobs.salary_max",
	search.FieldCompanyID:       "jobs.company_id",
	search.FieldPostedBy:        "jobs.posted_by",
	search.FieldIsFeatured:      "jobs.is_featured",
	search.FieldIsUrgent:        "jobs.is_urgent",
	search.FieldCreatedAt:       "jobs.created_at",
	search.FieldDeadline:        "jobs.application_deadline",
}

var sortColumns = map[string]string{
	search.SortCreatedAt:         "jobs.created_at",
	search.SortTitle:             "jobs.title",
	search.SortSalaryMin:         "jobs.salary_min",
	search.SortSalaryMax:         "jobs.salary_max",
	search.SortViewsCount:        "jobs.views_count",
	search.SortApplicationsCount: "applications_count",
}

// compilePredicate renders p as a parameterized WHERE fragment using gorm's
// ? placeholders.
func compilePredicate(p search.Predicate) (string, []any, error) {
	switch n := p.(type) {
	case search.And:
		return compileGroup(n, " AND ", "TRUE")
	case search.Or:
		return compileGroup(n, " OR ", "FALSE")
	case search.Cond:
		return compileCond(n)
	default:
		return "", nil, fmt.Errorf("unsupported predicate %T", p)
	}
}

func compileGroup(children []search.Predicate, sep, empty string) (string, []any, error) {
	if len(children) == 0 {
		return empty, nil, nil
	}
	parts := make([]string, 0, len(children))
	var args []any
	for _, c := range children {
		sql, a, err := compilePredicate(c)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, sql)
		args = append(args, a...)
	}
	return "(" + strings.Join(parts, sep) + ")", args, nil
}

func compileCond(c search.Cond) (string, []any, error) {
	col, ok := jobColumns[c.Field]
	if !ok {
		return "", nil, fmt.Errorf("unknown search field %q", c.Field)
	}

	switch c.Op {
	case search.OpEq:
		return col + " = ?", []any{c.Value}, nil
	case search.OpIn:
		set, _ := c.Value.([]any)
		if len(set) == 0 {
			return "FALSE", nil, nil
		}
		return col + " IN ?", []any{set}, nil
	case search.OpContainsFold:
		return col + ` ILIKE ? ESCAPE '\'`, []any{containsPattern(fmt.Sprint(c.Value))}, nil
	case search.OpHas:
		return "? = ANY(" + col + ")", []any{fmt.Sprint(c.Value)}, nil
	case search.OpGte:
		return col + " >= ?", []any{c.Value}, nil
	case search.OpLte:
		return col + " <= ?", []any{c.Value}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operator %s", c.Op)
	}
}

// orderClause renders a resolved sort. NULLs sort last either way, and the
// id breaks ties so pages are stable.
func orderClause(s search.Sort) string {
	col, ok := sortColumns[s.Field]
	if !ok {
		col = sortColumns[search.SortCreatedAt]
	}
	dir := "ASC"
	if s.Desc {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s NULLS LAST, jobs.id", col, dir)
}
