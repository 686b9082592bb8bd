package model

import (
	"time"

	"github.com/lib/pq"
)

// Job represents a job posting
type Job struct {
	ID                  string          `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID           string          `gorm:"type:uuid;not null;index;uniqueIndex:idx_jobs_company_slug,priority:1" json:"companyId"`
	PostedBy            string          `gorm:"type:uuid;not null;index" json:"postedBy"`
	CategoryID          *string         `gorm:"type:uuid;index" json:"categoryId,omitempty"`
	Title               string          `gorm:"size:200;not null" json:"title"`
	Slug                string          `gorm:"size:220;not null;uniqueIndex:idx_jobs_company_slug,priority:2" json:"slug"`
	Description         string          `gorm:"type:text;not null" json:"description"`
	Requirements        *string         `gorm:"type:text" json:"requirements,omitempty"`
	Responsibilities    *string         `gorm:"type:text" json:"responsibilities,omitempty"`
	Benefits            *string         `gorm:"type:text" json:"benefits,omitempty"`
	Location            *string         `gorm:"size:200" json:"location,omitempty"`
	RemoteType          RemoteType      `gorm:"type:varchar(16);not null" json:"remoteType"`
	EmploymentType      EmploymentType  `gorm:"type:varchar(16);not null" json:"employmentType"`
	ExperienceLevel     ExperienceLevel `gorm:"type:varchar(16)" json:"experienceLevel,omitempty"`
	SalaryMin           *int64          `json:"salaryMin,omitempty"`
	SalaryMax           *int64          `json:"salaryMax,omitempty"`
	Currency            string          `gorm:"size:3;not null" json:"currency"`
	SalaryType          SalaryType      `gorm:"type:varchar(16);not null" json:"salaryType"`
	SkillsRequired      pq.StringArray  `gorm:"type:text[]" json:"skillsRequired"`
	NiceToHaveSkills    pq.StringArray  `gorm:"type:text[]" json:"niceToHaveSkills"`
	ApplicationDeadline *time.Time      `json:"applicationDeadline,omitempty"`
	Status              JobStatus       `gorm:"type:varchar(16);not null;index" json:"status"`
	ViewsCount          int64           `gorm:"not null" json:"viewsCount"`
	IsFeatured          bool            `gorm:"not null" json:"isFeatured"`
	IsUrgent            bool            `gorm:"not null" json:"isUrgent"`
	CreatedAt           time.Time       `gorm:"index" json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`

	// Hydrated on reads
	Company           *Company     `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"company,omitempty"`
	Category          *JobCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	PostedByUser      *UserSummary `gorm:"foreignKey:PostedBy;references:ID" json:"postedByUser,omitempty"`
	ApplicationsCount int64        `gorm:"->;-:migration" json:"applicationsCount"`
}

// DeadlinePassed reports whether the application deadline is before now.
func (j *Job) DeadlinePassed(now time.Time) bool {
	return j.ApplicationDeadline != nil && j.ApplicationDeadline.Before(now)
}

// JobCategory is a lookup for grouping jobs
type JobCategory struct {
	ID          string  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Slug        string  `gorm:"size:120;not null;uniqueIndex" json:"slug"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	Icon        *string `gorm:"size:100" json:"icon,omitempty"`
	IsActive    bool    `gorm:"not null" json:"-"`
}

// CategoryWithCount is a category with the number of active jobs in it
type CategoryWithCount struct {
	JobCategory
	JobCount int64 `json:"jobCount"`
}

// JobApplication is a job seeker's application to a job. Only counted here.
type JobApplication struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	JobID     string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_application_job_user,priority:1" json:"jobId"`
	UserID    string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_application_job_user,priority:2" json:"userId"`
	Status    string    `gorm:"size:20;not null" json:"status"`
	CreatedAt time.Time `json:"createdAt"`

	Job *Job `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}
