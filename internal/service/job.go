package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fuzball1989/job-posting-portal/internal/database"
	"github.com/fuzball1989/job-posting-portal/internal/htmlsanitize"
	"github.com/fuzball1989/job-posting-portal/internal/model"
	"github.com/fuzball1989/job-posting-portal/internal/search"
	"github.com/fuzball1989/job-posting-portal/internal/slug"
)

const (
	// fallbackSlug is used when a title has no ASCII letters or digits.
	fallbackSlug = "job"

	// maxSlugAttempts bounds probe-and-insert rounds lost to concurrent
	// writers claiming the same slug.
	maxSlugAttempts = 10
)

// JobRepository defines the interface for job storage.
// Lookups return (nil, nil) when the job does not exist.
type JobRepository interface {
	// Create and Update fail with database.ErrDuplicate when the
	// (company, slug) pair is taken.
	Create(ctx context.Context, job *model.Job) error
	Update(ctx context.Context, job *model.Job) error
	Delete(ctx context.Context, id string) error

	// GetByID and GetBySlug hydrate company, category, poster and
	// applications count.
	GetByID(ctx context.Context, id string) (*model.Job, error)
	GetBySlug(ctx context.Context, companySlug, jobSlug string) (*model.Job, error)

	// SlugExists reports whether another job of the company uses slug.
	SlugExists(ctx context.Context, companyID, slug, excludeID string) (bool, error)

	// IncrementViews atomically bumps the view counter and returns the new
	// value. Missing jobs fail with database.ErrNotFound.
	IncrementViews(ctx context.Context, id string) (int64, error)

	Search(ctx context.Context, q search.Query) ([]*model.Job, int64, error)
	ListByPoster(ctx context.Context, userID string, offset, limit int) ([]*model.Job, int64, error)

	// CloseExpired closes active and paused jobs whose deadline is before now.
	CloseExpired(ctx context.Context, now time.Time) (int64, error)
}

// CategoryRepository defines the interface for category storage
type CategoryRepository interface {
	ListActiveWithCounts(ctx context.Context) ([]*model.CategoryWithCount, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// JobList is one page of jobs.
type JobList struct {
	Jobs       []*model.Job      `json:"jobs"`
	Pagination search.Pagination `json:"pagination"`
}

// JobService handles job posting operations
type JobService struct {
	jobRepo      JobRepository
	categoryRepo CategoryRepository
	policy       *Policy
	logger       *slog.Logger
	now          func() time.Time
}

// JobServiceConfig holds configuration for the job service
type JobServiceConfig struct {
	JobRepo      JobRepository
	CategoryRepo CategoryRepository
	Policy       *Policy
	Logger       *slog.Logger
}

// NewJobService creates a new job service
func NewJobService(cfg JobServiceConfig) *JobService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &JobService{
		jobRepo:      cfg.JobRepo,
		categoryRepo: cfg.CategoryRepo,
		policy:       cfg.Policy,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateJob posts a job for the caller's company.
func (s *JobService) CreateJob(ctx context.Context, userID string, req model.CreateJobRequest) (*model.Job, error) {
	companyID, err := s.policy.CanPostJobs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	job := req.ToJob()
	if err := sanitizeRichText(job); err != nil {
		return nil, err
	}
	job.ID = uuid.NewString()
	job.CompanyID = companyID
	job.PostedBy = userID

	if err := s.saveWithUniqueSlug(ctx, job, s.jobRepo.Create); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "job created",
		"job_id", job.ID,
		"company_id", companyID,
		"slug", job.Slug,
	)
	return s.mustGet(ctx, job.ID)
}

// SearchJobs returns one page of active jobs matching params.
func (s *JobService) SearchJobs(ctx context.Context, params search.Params) (*JobList, error) {
	q := search.NewQuery(params)
	jobs, total, err := s.jobRepo.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	return newJobList(jobs, params.Page, params.Limit, total), nil
}

// GetJobByID returns a job and counts the view. The returned ViewsCount
// includes this view.
func (s *JobService) GetJobByID(ctx context.Context, id string) (*model.Job, error) {
	if _, err := s.jobRepo.IncrementViews(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return s.mustGet(ctx, id)
}

// GetJobBySlug is GetJobByID addressed by company and job slugs.
func (s *JobService) GetJobBySlug(ctx context.Context, companySlug, jobSlug string) (*model.Job, error) {
	job, err := s.jobRepo.GetBySlug(ctx, companySlug, jobSlug)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	views, err := s.jobRepo.IncrementViews(ctx, job.ID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	job.ViewsCount = views
	return job, nil
}

// UpdateJob applies a partial update. A title change re-derives the slug;
// a status change must follow the job status graph.
func (s *JobService) UpdateJob(ctx context.Context, jobID, userID string, req model.UpdateJobRequest) (*model.Job, error) {
	job, err := s.loadModifiable(ctx, jobID, userID)
	if err != nil {
		return nil, err
	}
	if req.CategoryID != nil {
		if err := s.checkCategory(ctx, req.CategoryID); err != nil {
			return nil, err
		}
	}

	titleChanged := req.Title != nil && strings.TrimSpace(*req.Title) != job.Title
	req.Apply(job)
	if err := sanitizeRichText(job); err != nil {
		return nil, err
	}

	if errs := job.ValidateSalaryRange(); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	if req.Status != nil {
		next, err := model.ParseJobStatus(*req.Status)
		if err != nil {
			return nil, NewValidationError([]model.FieldError{{Field: "status", Message: err.Error()}})
		}
		if !job.Status.CanTransitionTo(next) {
			return nil, ErrInvalidStatusTransition
		}
		job.Status = next
	}

	if titleChanged {
		err = s.saveWithUniqueSlug(ctx, job, s.jobRepo.Update)
	} else {
		err = s.jobRepo.Update(ctx, job)
	}
	if err != nil {
		return nil, err
	}
	return s.mustGet(ctx, job.ID)
}

// DeleteJob removes a job and its applications.
func (s *JobService) DeleteJob(ctx context.Context, jobID, userID string) error {
	if _, err := s.loadModifiable(ctx, jobID, userID); err != nil {
		return err
	}
	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrJobNotFound
		}
		return err
	}
	s.logger.InfoContext(ctx, "job deleted", "job_id", jobID, "user_id", userID)
	return nil
}

// ListUserJobs returns the jobs a user posted, newest first, in any status.
func (s *JobService) ListUserJobs(ctx context.Context, userID string, page, limit int) (*JobList, error) {
	jobs, total, err := s.jobRepo.ListByPoster(ctx, userID, search.Offset(page, limit), limit)
	if err != nil {
		return nil, err
	}
	return newJobList(jobs, page, limit, total), nil
}

// CloseExpiredJobs closes jobs whose application deadline has passed.
func (s *JobService) CloseExpiredJobs(ctx context.Context) (int64, error) {
	return s.jobRepo.CloseExpired(ctx, s.now().UTC())
}

// sanitizeRichText strips unsafe markup from the HTML fields of job.
func sanitizeRichText(job *model.Job) error {
	job.Description = htmlsanitize.Sanitize(job.Description)
	if job.Description == "" {
		return NewValidationError([]model.FieldError{{Field: "description", Message: "must contain text"}})
	}
	htmlsanitize.SanitizePtr(&job.Requirements)
	htmlsanitize.SanitizePtr(&job.Responsibilities)
	htmlsanitize.SanitizePtr(&job.Benefits)
	return nil
}

// ============================================================================
// Helpers
// ============================================================================

// saveWithUniqueSlug derives the slug from the title and saves. The probe is
// advisory: a concurrent writer may claim the same slug first, in which case
// the unique index rejects the save and the probe runs again.
func (s *JobService) saveWithUniqueSlug(ctx context.Context, job *model.Job, save func(context.Context, *model.Job) error) error {
	base := slug.Make(job.Title)
	if base == "" {
		base = fallbackSlug
	}

	exists := func(ctx context.Context, candidate string) (bool, error) {
		return s.jobRepo.SlugExists(ctx, job.CompanyID, candidate, job.ID)
	}

	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		candidate, err := slug.Unique(ctx, base, exists)
		if err != nil {
			return err
		}
		job.Slug = candidate

		err = save(ctx, job)
		if err == nil {
			return nil
		}
		if !errors.Is(err, database.ErrDuplicate) {
			return err
		}
		s.logger.DebugContext(ctx, "slug taken concurrently, retrying",
			"slug", candidate,
			"attempt", attempt,
		)
	}
	return ErrSlugConflict
}

func (s *JobService) loadModifiable(ctx context.Context, jobID, userID string) (*model.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	ok, err := s.policy.canModify(ctx, job, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotJobOwner
	}
	return job, nil
}

func (s *JobService) checkCategory(ctx context.Context, categoryID *string) error {
	if categoryID == nil || *categoryID == "" {
		return nil
	}
	ok, err := s.categoryRepo.Exists(ctx, *categoryID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *JobService) mustGet(ctx context.Context, id string) (*model.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

func newJobList(jobs []*model.Job, page, limit int, total int64) *JobList {
	if jobs == nil {
		jobs = []*model.Job{}
	}
	return &JobList{
		Jobs:       jobs,
		Pagination: search.NewPagination(page, limit, total),
	}
}
