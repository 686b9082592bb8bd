package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/fuzball1989/job-posting-portal/internal/model"
	"github.com/fuzball1989/job-posting-portal/internal/search"
)

// queryErrors collects field errors while reading query parameters.
type queryErrors []model.FieldError

func (q *queryErrors) add(field, message string) {
	*q = append(*q, model.FieldError{Field: field, Message: message})
}

// parseSearchParams reads the public job search parameters. Facets accept
// comma-separated and repeated values, matched case-insensitively.
func parseSearchParams(values url.Values) (search.Params, []model.FieldError) {
	var errs queryErrors

	params := search.Params{
		Search:     strings.TrimSpace(values.Get("search")),
		CategoryID: strings.TrimSpace(values.Get("categoryId")),
		Location:   strings.TrimSpace(values.Get("location")),
		CompanyID:  strings.TrimSpace(values.Get("companyId")),
		SortBy:     values.Get("sortBy"),
		SortOrder:  values.Get("sortOrder"),
	}

	parseID(params.CategoryID, "categoryId", &errs)
	parseID(params.CompanyID, "companyId", &errs)

	params.RemoteTypes = parseEnumList(values, "remoteType", model.ParseRemoteType, &errs)
	params.EmploymentTypes = parseEnumList(values, "employmentType", model.ParseEmploymentType, &errs)
	params.ExperienceLevels = parseEnumList(values, "experienceLevel", model.ParseExperienceLevel, &errs)

	params.SalaryMin = parseNonNegative(values, "salaryMin", &errs)
	params.SalaryMax = parseNonNegative(values, "salaryMax", &errs)
	params.IsFeatured = parseBool(values, "isFeatured", &errs)
	params.IsUrgent = parseBool(values, "isUrgent", &errs)

	if days := parseNonNegative(values, "postedWithin", &errs); days != nil {
		params.PostedWithinDays = int(*days)
	}

	params.Page, params.Limit = parsePage(values, &errs)

	return params, errs
}

// parseID rejects a non-empty id that is not a UUID.
func parseID(raw, field string, errs *queryErrors) {
	if raw == "" {
		return
	}
	if _, err := uuid.Parse(raw); err != nil {
		errs.add(field, field+" must be a valid id")
	}
}

// parsePage reads page and limit, applying defaults. Out of range values
// are errors rather than being clamped.
func parsePage(values url.Values, errs *queryErrors) (page, limit int) {
	page, limit = search.DefaultPage, search.DefaultLimit

	if raw := values.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errs.add("page", "page must be a positive integer")
		} else {
			page = n
		}
	}
	if raw := values.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > search.MaxLimit {
			errs.add("limit", fmt.Sprintf("limit must be between 1 and %d", search.MaxLimit))
		} else {
			limit = n
		}
	}
	return page, limit
}

func parseEnumList[E any](values url.Values, field string, parse func(string) (E, error), errs *queryErrors) []E {
	var out []E
	for _, raw := range values[field] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			v, err := parse(part)
			if err != nil {
				errs.add(field, fmt.Sprintf("unknown %s %q", field, part))
				continue
			}
			out = append(out, v)
		}
	}
	return out
}

func parseNonNegative(values url.Values, field string, errs *queryErrors) *int64 {
	raw := strings.TrimSpace(values.Get(field))
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		errs.add(field, field+" must be a non-negative integer")
		return nil
	}
	return &n
}

func parseBool(values url.Values, field string, errs *queryErrors) *bool {
	raw := strings.TrimSpace(values.Get(field))
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		errs.add(field, field+" must be true or false")
		return nil
	}
	return &b
}
