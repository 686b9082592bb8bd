package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/fuzball1989/job-posting-portal/internal/database"
	"github.com/fuzball1989/job-posting-portal/internal/model"
	"github.com/fuzball1989/job-posting-portal/internal/search"
)

// JobRepository is the memory-backed job store.
type JobRepository struct{ s *Store }

func slugKey(companyID, slug string) string { return companyID + "/" + slug }

// Create inserts a job. A taken (company, slug) pair fails with
// database.ErrDuplicate.
func (r *JobRepository) Create(_ context.Context, job *model.Job) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	key := slugKey(job.CompanyID, job.Slug)
	if _, taken := s.jobSlugs[key]; taken {
		return duplicate("job slug")
	}
	ensureID(&job.ID)
	if _, taken := s.jobs[job.ID]; taken {
		return duplicate("job id")
	}

	now := s.now()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now

	s.jobs[job.ID] = storedJob(job)
	s.jobSlugs[key] = job.ID
	return nil
}

// Update replaces a job's columns, keeping its creation time and view count.
func (r *JobRepository) Update(_ context.Context, job *model.Job) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.jobs[job.ID]
	if !ok {
		return database.ErrNotFound
	}

	oldKey := slugKey(current.CompanyID, current.Slug)
	newKey := slugKey(job.CompanyID, job.Slug)
	if newKey != oldKey {
		if owner, taken := s.jobSlugs[newKey]; taken && owner != job.ID {
			return duplicate("job slug")
		}
		delete(s.jobSlugs, oldKey)
		s.jobSlugs[newKey] = job.ID
	}

	next := storedJob(job)
	next.CreatedAt = current.CreatedAt
	next.ViewsCount = current.ViewsCount
	next.UpdatedAt = s.now()
	s.jobs[job.ID] = next

	job.UpdatedAt = next.UpdatedAt
	return nil
}

// Delete removes a job and its applications.
func (r *JobRepository) Delete(_ context.Context, id string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[id]
	if !ok {
		return database.ErrNotFound
	}
	delete(s.jobSlugs, slugKey(j.CompanyID, j.Slug))
	delete(s.jobs, id)
	for appID, a := range s.applications {
		if a.JobID == id {
			delete(s.applications, appID)
		}
	}
	return nil
}

// GetByID returns a hydrated job or nil.
func (r *JobRepository) GetByID(_ context.Context, id string) (*model.Job, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	if !ok {
		return nil, nil
	}
	return s.hydrate(j), nil
}

// GetBySlug returns a hydrated job addressed by company and job slug, or nil.
func (r *JobRepository) GetBySlug(_ context.Context, companySlug, jobSlug string) (*model.Job, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	companyID, ok := s.companySlugs[companySlug]
	if !ok {
		return nil, nil
	}
	id, ok := s.jobSlugs[slugKey(companyID, jobSlug)]
	if !ok {
		return nil, nil
	}
	return s.hydrate(s.jobs[id]), nil
}

// SlugExists reports whether a job of the company other than excludeID uses
// slug.
func (r *JobRepository) SlugExists(_ context.Context, companyID, slug, excludeID string) (bool, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.jobSlugs[slugKey(companyID, slug)]
	return ok && id != excludeID, nil
}

// IncrementViews bumps the view counter and returns the new value.
func (r *JobRepository) IncrementViews(_ context.Context, id string) (int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[id]
	if !ok {
		return 0, database.ErrNotFound
	}
	j.ViewsCount++
	return j.ViewsCount, nil
}

// Search evaluates the query's predicate over every job.
func (r *JobRepository) Search(_ context.Context, q search.Query) ([]*model.Job, int64, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*model.Job
	for _, j := range s.jobs {
		if search.Eval(q.Filter, s.getter(j)) {
			matched = append(matched, s.hydrate(j))
		}
	}
	sortJobs(matched, q.Sort)
	return page(matched, q.Offset, q.Limit), int64(len(matched)), nil
}

// ListByPoster returns jobs posted by userID, newest first.
func (r *JobRepository) ListByPoster(_ context.Context, userID string, offset, limit int) ([]*model.Job, int64, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*model.Job
	for _, j := range s.jobs {
		if j.PostedBy == userID {
			matched = append(matched, s.hydrate(j))
		}
	}
	sortJobs(matched, search.DefaultSort)
	return page(matched, offset, limit), int64(len(matched)), nil
}

// CloseExpired closes active and paused jobs whose deadline is before now.
func (r *JobRepository) CloseExpired(_ context.Context, now time.Time) (int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, j := range s.jobs {
		if (j.Status == model.JobActive || j.Status == model.JobPaused) && j.DeadlinePassed(now) {
			j.Status = model.JobClosed
			j.UpdatedAt = now
			n++
		}
	}
	return n, nil
}

// ──────────────────────────────────────────────────
// Helpers (callers hold s.mu)
// ──────────────────────────────────────────────────

// storedJob copies the columns of job, dropping hydrated relations.
func storedJob(job *model.Job) *model.Job {
	c := *job
	c.Company, c.Category, c.PostedByUser = nil, nil, nil
	c.ApplicationsCount = 0
	c.SkillsRequired = append([]string{}, job.SkillsRequired...)
	c.NiceToHaveSkills = append([]string{}, job.NiceToHaveSkills...)
	return &c
}

func (s *Store) hydrate(j *model.Job) *model.Job {
	out := *j
	out.SkillsRequired = append([]string{}, j.SkillsRequired...)
	out.NiceToHaveSkills = append([]string{}, j.NiceToHaveSkills...)

	if c, ok := s.companies[j.CompanyID]; ok {
		cc := *c
		out.Company = &cc
	}
	if j.CategoryID != nil {
		if c, ok := s.categories[*j.CategoryID]; ok {
			cc := *c
			out.Category = &cc
		}
	}
	if u, ok := s.users[j.PostedBy]; ok {
		out.PostedByUser = &model.UserSummary{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName}
	}
	for _, a := range s.applications {
		if a.JobID == j.ID {
			out.ApplicationsCount++
		}
	}
	return &out
}

// getter exposes a stored job to search.Eval. Unset optional columns are
// reported missing, like NULL.
func (s *Store) getter(j *model.Job) search.Getter {
	return func(f search.Field) (any, bool) {
		switch f {
		case search.FieldStatus:
			return j.Status, true
		case search.FieldTitle:
			return j.Title, true
		case search.FieldDescription:
			return j.Description, true
		case search.FieldCompanyName:
			c, ok := s.companies[j.CompanyID]
			if !ok {
				return nil, false
			}
			return c.Name, true
		case search.FieldSkills:
			return []string(j.SkillsRequired), true
		case search.FieldCategoryID:
			return j.CategoryID, j.CategoryID != nil
		case search.FieldLocation:
			return j.Location, j.Location != nil
		case search.FieldRemoteType:
			return j.RemoteType, j.RemoteType.IsValid()
		case search.FieldEmploymentType:
			return j.EmploymentType, j.EmploymentType.IsValid()
		case search.FieldExperienceLevel:
			return j.ExperienceLevel, j.ExperienceLevel.IsValid()
		case search.FieldSalaryMin:
			return j.SalaryMin, j.SalaryMin != nil
		case search.FieldSalaryMax:
			return j.SalaryMax, j.SalaryMax != nil
		case search.FieldCompanyID:
			return j.CompanyID, true
		case search.FieldPostedBy:
			return j.PostedBy, true
		case search.FieldIsFeatured:
			return j.IsFeatured, true
		case search.FieldIsUrgent:
			return j.IsUrgent, true
		case search.FieldCreatedAt:
			return j.CreatedAt, true
		case search.FieldDeadline:
			return j.ApplicationDeadline, j.ApplicationDeadline != nil
		default:
			return nil, false
		}
	}
}

// sortJobs orders hydrated jobs like the SQL ORDER BY: NULLs last in either
// direction, id as the tie breaker.
func sortJobs(jobs []*model.Job, order search.Sort) {
	sort.SliceStable(jobs, func(i, k int) bool {
		c := compareJobs(jobs[i], jobs[k], order.Field)
		if c == 0 {
			return jobs[i].ID < jobs[k].ID
		}
		if c == nullLast || c == nullFirst {
			return c == nullFirst
		}
		if order.Desc {
			return c > 0
		}
		return c < 0
	})
}

const (
	// nullFirst and nullLast are returned by compareJobs when exactly one
	// side is NULL; they are never reversed by the sort direction.
	nullFirst = -2
	nullLast  = 2
)

func compareJobs(a, b *model.Job, field string) int {
	switch field {
	case search.SortTitle:
		return strings.Compare(a.Title, b.Title)
	case search.SortSalaryMin:
		return compareNullable(a.SalaryMin, b.SalaryMin)
	case search.SortSalaryMax:
		return compareNullable(a.SalaryMax, b.SalaryMax)
	case search.SortViewsCount:
		return compareInt(a.ViewsCount, b.ViewsCount)
	case search.SortApplicationsCount:
		return compareInt(a.ApplicationsCount, b.ApplicationsCount)
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func compareNullable(a, b *int64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return nullLast
	case b == nil:
		return nullFirst
	}
	return compareInt(*a, *b)
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func page(jobs []*model.Job, offset, limit int) []*model.Job {
	if offset >= len(jobs) {
		return []*model.Job{}
	}
	end := len(jobs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return jobs[offset:end]
}

func sortCategories(cs []*model.CategoryWithCount) {
	sort.Slice(cs, func(i, k int) bool { return cs[i].Name < cs[k].Name })
}
