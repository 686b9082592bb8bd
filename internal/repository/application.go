package repository

import (
	"context"

	"github.com/fuzball1989/job-posting-portal/internal/database"
	"github.com/fuzball1989/job-posting-portal/internal/model"
)

// ApplicationRepository handles job application data access. Applications
// are only created here (seed data, fixtures) and counted on job reads.
type ApplicationRepository struct {
	db *database.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *database.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create records an application. A user may apply to a job once.
func (r *ApplicationRepository) Create(ctx context.Context, a *model.JobApplication) error {
	return database.Translate(r.db.Gorm(ctx).Omit("Job").Create(a).Error)
}
