package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fuzball1989/job-posting-portal/internal/database"
	"github.com/fuzball1989/job-posting-portal/internal/model"
	"github.com/fuzball1989/job-posting-portal/internal/search"
)

const jobSelect = "jobs.*, (SELECT COUNT(*) FROM job_applications a WHERE a.job_id = jobs.id) AS applications_count"

// JobRepository handles job data access
type JobRepository struct {
	db *database.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *database.DB) *JobRepository {
	return &JobRepository{db: db}
}

// hydrated selects jobs with their company, category, poster and
// applications count.
func (r *JobRepository) hydrated(ctx context.Context) *gorm.DB {
	return r.db.Gorm(ctx).
		Model(&model.Job{}).
		Select(jobSelect).
		Preload("Company").
		Preload("Category").
		Preload("PostedByUser")
}

// Create inserts a job. A taken (company, slug) pair fails with
// database.ErrDuplicate.
func (r *JobRepository) Create(ctx context.Context, job *model.Job) error {
	return database.Translate(r.db.Gorm(ctx).Omit(clause.Associations).Create(job).Error)
}

// Update writes every column of job.
func (r *JobRepository) Update(ctx context.Context, job *model.Job) error {
	res := r.db.Gorm(ctx).
		Model(job).
		Select("*").
		Omit("ID", "CreatedAt", "ViewsCount", clause.Associations).
		Updates(job)
	if res.Error != nil {
		return database.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// Delete removes a job; applications cascade.
func (r *JobRepository) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return database.ErrNotFound
	}
	res := r.db.Gorm(ctx).Where("id = ?", id).Delete(&model.Job{})
	if res.Error != nil {
		return database.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// GetByID retrieves a hydrated job
func (r *JobRepository) GetByID(ctx context.Context, id string) (*model.Job, error) {
	if !isUUID(id) {
		return nil, nil
	}
	var job model.Job
	err := r.hydrated(ctx).Where("jobs.id = ?", id).Take(&job).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetBySlug retrieves a hydrated job by company slug and job slug
func (r *JobRepository) GetBySlug(ctx context.Context, companySlug, jobSlug string) (*model.Job, error) {
	var job model.Job
	err := r.hydrated(ctx).
		Joins("JOIN companies ON companies.id = jobs.company_id").
		Where("companies.slug = ? AND jobs.slug = ?", companySlug, jobSlug).
		Take(&job).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// SlugExists reports whether a job of the company other than excludeID
// uses slug
func (r *JobRepository) SlugExists(ctx context.Context, companyID, slug, excludeID string) (bool, error) {
	q := r.db.Gorm(ctx).Model(&model.Job{}).Where("company_id = ? AND slug = ?", companyID, slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// IncrementViews bumps views_count in a single statement and returns the new
// value
func (r *JobRepository) IncrementViews(ctx context.Context, id string) (int64, error) {
	if !isUUID(id) {
		return 0, database.ErrNotFound
	}
	var views []int64
	err := r.db.Gorm(ctx).
		Raw("UPDATE jobs SET views_count = views_count + 1 WHERE id = ? RETURNING views_count", id).
		Scan(&views).Error
	if err != nil {
		return 0, err
	}
	if len(views) == 0 {
		return 0, database.ErrNotFound
	}
	return views[0], nil
}

// Search returns one page of jobs matching q and the total match count
func (r *JobRepository) Search(ctx context.Context, q search.Query) ([]*model.Job, int64, error) {
	where, args, err := compilePredicate(q.Filter)
	if err != nil {
		return nil, 0, err
	}

	base := r.db.Gorm(ctx).
		Model(&model.Job{}).
		Joins("JOIN companies ON companies.id = jobs.company_id").
		Where(where, args...).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []*model.Job
	err = base.
		Select(jobSelect).
		Preload("Company").
		Preload("Category").
		Preload("PostedByUser").
		Order(orderClause(q.Sort)).
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// ListByPoster returns jobs posted by a user, newest first, in any status
func (r *JobRepository) ListByPoster(ctx context.Context, userID string, offset, limit int) ([]*model.Job, int64, error) {
	if !isUUID(userID) {
		return nil, 0, nil
	}

	var total int64
	if err := r.db.Gorm(ctx).Model(&model.Job{}).Where("posted_by = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []*model.Job
	err := r.hydrated(ctx).
		Where("jobs.posted_by = ?", userID).
		Order("jobs.created_at DESC, jobs.id").
		Offset(offset).
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// CloseExpired closes active and paused jobs whose deadline is before now
func (r *JobRepository) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.Gorm(ctx).
		Model(&model.Job{}).
		Where("status IN ? AND application_deadline < ?", []any{model.JobActive, model.JobPaused}, now).
		Updates(map[string]any{"status": model.JobClosed, "updated_at": now})
	return res.RowsAffected, res.Error
}
