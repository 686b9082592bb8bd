package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	MaxJobTitleLength            = 200
	MaxJobDescriptionLength      = 10000
	MaxJobRequirementsLength     = 5000
	MaxJobResponsibilitiesLength = 5000
	MaxJobBenefitsLength         = 3000
	MaxLocationLength            = 200
	MaxSkillsPerJob              = 50
	MaxSkillLength               = 100

	DefaultCurrency = "USD"
)

var currencyPattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// CreateJobRequest represents a request to post a job.
// Enum fields are wire strings; Validate parses them.
type CreateJobRequest struct {
	CategoryID          *string    `json:"categoryId,omitempty"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Requirements        *string    `json:"requirements,omitempty"`
	Responsibilities    *string    `json:"responsibilities,omitempty"`
	Benefits            *string    `json:"benefits,omitempty"`
	Location            *string    `json:"location,omitempty"`
	RemoteType          string     `json:"remoteType,omitempty"`
	EmploymentType      string     `json:"employmentType"`
	ExperienceLevel     *string    `json:"experienceLevel,omitempty"`
	SalaryMin           *int64     `json:"salaryMin,omitempty"`
	SalaryMax           *int64     `json:"salaryMax,omitempty"`
	Currency            string     `json:"currency,omitempty"`
	SalaryType          string     `json:"salaryType,omitempty"`
	SkillsRequired      []string   `json:"skillsRequired,omitempty"`
	NiceToHaveSkills    []string   `json:"niceToHaveSkills,omitempty"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	Status              *string    `json:"status,omitempty"`
	IsFeatured          bool       `json:"isFeatured"`
	IsUrgent            bool       `json:"isUrgent"`
}

// Validate checks if the create request is valid
func (r *CreateJobRequest) Validate() []FieldError {
	var errors []FieldError

	if strings.TrimSpace(r.Title) == "" {
		errors = append(errors, FieldError{Field: "title", Message: "title is required"})
	} else if len(r.Title) > MaxJobTitleLength {
		errors = append(errors, FieldError{Field: "title", Message: "title must be 200 characters or less"})
	}
	if strings.TrimSpace(r.Description) == "" {
		errors = append(errors, FieldError{Field: "description", Message: "description is required"})
	} else if len(r.Description) > MaxJobDescriptionLength {
		errors = append(errors, FieldError{Field: "description", Message: "description must be 10000 characters or less"})
	}
	if r.EmploymentType == "" {
		errors = append(errors, FieldError{Field: "employmentType", Message: "employmentType is required"})
	} else if _, err := ParseEmploymentType(r.EmploymentType); err != nil {
		errors = append(errors, FieldError{Field: "employmentType", Message: "employmentType must be full_time, part_time, contract, or internship"})
	}
	if r.RemoteType != "" {
		if _, err := ParseRemoteType(r.RemoteType); err != nil {
			errors = append(errors, FieldError{Field: "remoteType", Message: "remoteType must be office, remote, or hybrid"})
		}
	}
	if r.SalaryType != "" {
		if _, err := ParseSalaryType(r.SalaryType); err != nil {
			errors = append(errors, FieldError{Field: "salaryType", Message: "salaryType must be yearly, monthly, weekly, or hourly"})
		}
	}
	if r.Currency != "" && !currencyPattern.MatchString(r.Currency) {
		errors = append(errors, FieldError{Field: "currency", Message: "currency must be a 3-letter code"})
	}
	if r.Status != nil {
		status, err := ParseJobStatus(*r.Status)
		if err != nil || (status != JobDraft && status != JobActive) {
			errors = append(errors, FieldError{Field: "status", Message: "status must be draft or active for a new job"})
		}
	}

	errors = append(errors, validateOptionalText(r.Requirements, r.Responsibilities, r.Benefits, r.Location)...)
	errors = append(errors, validateExperienceLevel(r.ExperienceLevel)...)
	errors = append(errors, validateSalary(r.SalaryMin, r.SalaryMax)...)
	errors = append(errors, validateSkills("skillsRequired", r.SkillsRequired)...)
	errors = append(errors, validateSkills("niceToHaveSkills", r.NiceToHaveSkills)...)

	return errors
}

// ToJob builds a job from a validated request, applying defaults.
func (r *CreateJobRequest) ToJob() *Job {
	job := &Job{
		CategoryID:          emptyToNil(r.CategoryID),
		Title:               strings.TrimSpace(r.Title),
		Description:         r.Description,
		Requirements:        r.Requirements,
		Responsibilities:    r.Responsibilities,
		Benefits:            r.Benefits,
		Location:            r.Location,
		RemoteType:          RemoteOffice,
		SalaryMin:           r.SalaryMin,
		SalaryMax:           r.SalaryMax,
		Currency:            DefaultCurrency,
		SalaryType:          SalaryYearly,
		SkillsRequired:      nonNilSkills(r.SkillsRequired),
		NiceToHaveSkills:    nonNilSkills(r.NiceToHaveSkills),
		ApplicationDeadline: r.ApplicationDeadline,
		Status:              JobActive,
		IsFeatured:          r.IsFeatured,
		IsUrgent:            r.IsUrgent,
	}

	job.EmploymentType, _ = ParseEmploymentType(r.EmploymentType)
	if r.RemoteType != "" {
		job.RemoteType, _ = ParseRemoteType(r.RemoteType)
	}
	if r.SalaryType != "" {
		job.SalaryType, _ = ParseSalaryType(r.SalaryType)
	}
	if r.Currency != "" {
		job.Currency = strings.ToUpper(r.Currency)
	}
	if r.ExperienceLevel != nil && *r.ExperienceLevel != "" {
		job.ExperienceLevel, _ = ParseExperienceLevel(*r.ExperienceLevel)
	}
	if r.Status != nil {
		job.Status, _ = ParseJobStatus(*r.Status)
	}
	return job
}

// UpdateJobRequest represents a partial update. Nil fields are left unchanged.
type UpdateJobRequest struct {
	CategoryID          *string    `json:"categoryId,omitempty"`
	Title               *string    `json:"title,omitempty"`
	Description         *string    `json:"description,omitempty"`
	Requirements        *string    `json:"requirements,omitempty"`
	Responsibilities    *string    `json:"responsibilities,omitempty"`
	Benefits            *string    `json:"benefits,omitempty"`
	Location            *string    `json:"location,omitempty"`
	RemoteType          *string    `json:"remoteType,omitempty"`
	EmploymentType      *string    `json:"employmentType,omitempty"`
	ExperienceLevel     *string    `json:"experienceLevel,omitempty"`
	SalaryMin           *int64     `json:"salaryMin,omitempty"`
	SalaryMax           *int64     `json:"salaryMax,omitempty"`
	Currency            *string    `json:"currency,omitempty"`
	SalaryType          *string    `json:"salaryType,omitempty"`
	SkillsRequired      []string   `json:"skillsRequired,omitempty"`
	NiceToHaveSkills    []string   `json:"niceToHaveSkills,omitempty"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	Status              *string    `json:"status,omitempty"`
	IsFeatured          *bool      `json:"isFeatured,omitempty"`
	IsUrgent            *bool      `json:"isUrgent,omitempty"`
}

// Validate checks the fields present in the update request
func (r *UpdateJobRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			errors = append(errors, FieldError{Field: "title", Message: "title cannot be empty"})
		} else if len(*r.Title) > MaxJobTitleLength {
			errors = append(errors, FieldError{Field: "title", Message: "title must be 200 characters or less"})
		}
	}
	if r.Description != nil {
		if strings.TrimSpace(*r.Description) == "" {
			errors = append(errors, FieldError{Field: "description", Message: "description cannot be empty"})
		} else if len(*r.Description) > MaxJobDescriptionLength {
			errors = append(errors, FieldError{Field: "description", Message: "description must be 10000 characters or less"})
		}
	}
	if r.RemoteType != nil {
		if _, err := ParseRemoteType(*r.RemoteType); err != nil {
			errors = append(errors, FieldError{Field: "remoteType", Message: "remoteType must be office, remote, or hybrid"})
		}
	}
	if r.EmploymentType != nil {
		if _, err := ParseEmploymentType(*r.EmploymentType); err != nil {
			errors = append(errors, FieldError{Field: "employmentType", Message: "employmentType must be full_time, part_time, contract, or internship"})
		}
	}
	if r.SalaryType != nil {
		if _, err := ParseSalaryType(*r.SalaryType); err != nil {
			errors = append(errors, FieldError{Field: "salaryType", Message: "salaryType must be yearly, monthly, weekly, or hourly"})
		}
	}
	if r.Currency != nil && !currencyPattern.MatchString(*r.Currency) {
		errors = append(errors, FieldError{Field: "currency", Message: "currency must be a 3-letter code"})
	}
	if r.Status != nil {
		if _, err := ParseJobStatus(*r.Status); err != nil {
			errors = append(errors, FieldError{Field: "status", Message: "status must be draft, active, paused, closed, or filled"})
		}
	}

	errors = append(errors, validateOptionalText(r.Requirements, r.Responsibilities, r.Benefits, r.Location)...)
	errors = append(errors, validateExperienceLevel(r.ExperienceLevel)...)
	errors = append(errors, validateSalary(r.SalaryMin, r.SalaryMax)...)
	errors = append(errors, validateSkills("skillsRequired", r.SkillsRequired)...)
	errors = append(errors, validateSkills("niceToHaveSkills", r.NiceToHaveSkills)...)

	return errors
}

// Apply merges the update onto job. Status is handled by the caller since it
// is subject to transition rules.
func (r *UpdateJobRequest) Apply(job *Job) {
	if r.CategoryID != nil {
		job.CategoryID = emptyToNil(r.CategoryID)
		job.Category = nil
	}
	if r.Title != nil {
		job.Title = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		job.Description = *r.Description
	}
	if r.Requirements != nil {
		job.Requirements = r.Requirements
	}
	if r.Responsibilities != nil {
		job.Responsibilities = r.Responsibilities
	}
	if r.Benefits != nil {
		job.Benefits = r.Benefits
	}
	if r.Location != nil {
		job.Location = r.Location
	}
	if r.RemoteType != nil {
		job.RemoteType, _ = ParseRemoteType(*r.RemoteType)
	}
	if r.EmploymentType != nil {
		job.EmploymentType, _ = ParseEmploymentType(*r.EmploymentType)
	}
	if r.ExperienceLevel != nil {
		job.ExperienceLevel = 0
		if *r.ExperienceLevel != "" {
			job.ExperienceLevel, _ = ParseExperienceLevel(*r.ExperienceLevel)
		}
	}
	if r.SalaryMin != nil {
		job.SalaryMin = r.SalaryMin
	}
	if r.SalaryMax != nil {
		job.SalaryMax = r.SalaryMax
	}
	if r.Currency != nil {
		job.Currency = strings.ToUpper(*r.Currency)
	}
	if r.SalaryType != nil {
		job.SalaryType, _ = ParseSalaryType(*r.SalaryType)
	}
	if r.SkillsRequired != nil {
		job.SkillsRequired = nonNilSkills(r.SkillsRequired)
	}
	if r.NiceToHaveSkills != nil {
		job.NiceToHaveSkills = nonNilSkills(r.NiceToHaveSkills)
	}
	if r.ApplicationDeadline != nil {
		job.ApplicationDeadline = r.ApplicationDeadline
	}
	if r.IsFeatured != nil {
		job.IsFeatured = *r.IsFeatured
	}
	if r.IsUrgent != nil {
		job.IsUrgent = *r.IsUrgent
	}
}

// ValidateSalaryRange checks salaryMin <= salaryMax on a merged job.
func (j *Job) ValidateSalaryRange() []FieldError {
	return validateSalary(j.SalaryMin, j.SalaryMax)
}

func validateOptionalText(requirements, responsibilities, benefits, location *string) []FieldError {
	var errors []FieldError
	checks := []struct {
		field string
		value *string
		max   int
	}{
		{"requirements", requirements, MaxJobRequirementsLength},
		{"responsibilities", responsibilities, MaxJobResponsibilitiesLength},
		{"benefits", benefits, MaxJobBenefitsLength},
		{"location", location, MaxLocationLength},
	}
	for _, c := range checks {
		if c.value != nil && len(*c.value) > c.max {
			errors = append(errors, FieldError{Field: c.field, Message: fmt.Sprintf("%s must be %d characters or less", c.field, c.max)})
		}
	}
	return errors
}

func validateExperienceLevel(level *string) []FieldError {
	if level == nil || *level == "" {
		return nil
	}
	if _, err := ParseExperienceLevel(*level); err != nil {
		return []FieldError{{Field: "experienceLevel", Message: "experienceLevel must be entry, mid, senior, lead, or executive"}}
	}
	return nil
}

func validateSalary(salaryMin, salaryMax *int64) []FieldError {
	var errors []FieldError
	if salaryMin != nil && *salaryMin < 0 {
		errors = append(errors, FieldError{Field: "salaryMin", Message: "salaryMin must be zero or greater"})
	}
	if salaryMax != nil && *salaryMax < 0 {
		errors = append(errors, FieldError{Field: "salaryMax", Message: "salaryMax must be zero or greater"})
	}
	if salaryMin != nil && salaryMax != nil && *salaryMin > *salaryMax {
		errors = append(errors, FieldError{Field: "salaryMax", Message: "salaryMax must be greater than or equal to salaryMin"})
	}
	return errors
}

func validateSkills(field string, skills []string) []FieldError {
	if len(skills) > MaxSkillsPerJob {
		return []FieldError{{Field: field, Message: fmt.Sprintf("at most %d skills allowed", MaxSkillsPerJob)}}
	}
	for _, s := range skills {
		if strings.TrimSpace(s) == "" || len(s) > MaxSkillLength {
			return []FieldError{{Field: field, Message: fmt.Sprintf("skills must be 1 to %d characters", MaxSkillLength)}}
		}
	}
	return nil
}

func nonNilSkills(skills []string) []string {
	if skills == nil {
		return []string{}
	}
	return skills
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
