package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fuzball1989/job-posting-portal/internal/database"
	"github.com/fuzball1989/job-posting-portal/internal/model"
	"github.com/fuzball1989/job-posting-portal/internal/repository"
	"github.com/fuzball1989/job-posting-portal/internal/repository/memory"
	"github.com/fuzball1989/job-posting-portal/internal/slug"
)

// DefaultPassword is the plaintext password of every fixture user.
const DefaultPassword = "testpass123"

// Repos is the write surface the factory needs.
type Repos struct {
	Users interface {
		Create(ctx context.Context, user *model.User, profile *model.UserProfile) error
	}
	Companies interface {
		Create(ctx context.Context, c *model.Company) error
	}
	Memberships interface {
		Create(ctx context.Context, m *model.CompanyMembership) error
	}
	Categories interface {
		Create(ctx context.Context, c *model.JobCategory) error
	}
	Jobs interface {
		Create(ctx context.Context, j *model.Job) error
	}
	Applications interface {
		Create(ctx context.Context, a *model.JobApplication) error
	}
}

// FromMemory returns the repositories of an in-memory store.
func FromMemory(s *memory.Store) Repos {
	return Repos{
		Users:        s.Users(),
		Companies:    s.Companies(),
		Memberships:  s.Memberships(),
		Categories:   s.Categories(),
		Jobs:         s.Jobs(),
		Applications: s.Applications(),
	}
}

// FromDB returns the gorm repositories over db.
func FromDB(db *database.DB) Repos {
	return Repos{
		Users:        repository.NewUserRepository(db),
		Companies:    repository.NewCompanyRepository(db),
		Memberships:  repository.NewMembershipRepository(db),
		Categories:   repository.NewCategoryRepository(db),
		Jobs:         repository.NewJobRepository(db),
		Applications: repository.NewApplicationRepository(db),
	}
}

// Factory creates test entities
type Factory struct {
	repos Repos
}

// New creates a new fixture factory
func New(repos Repos) *Factory {
	return &Factory{repos: repos}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx(t *testing.T) context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return c
}

// ============================================================================
// User Fixtures
// ============================================================================

// UserOpts customizes user creation
type UserOpts struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      model.Role
	Inactive  bool
}

// CreateUser creates an active job seeker with a profile unless opts say
// otherwise
func (f *Factory) CreateUser(t *testing.T, opts ...func(*UserOpts)) *model.User {
	t.Helper()

	o := &UserOpts{
		Email:     fmt.Sprintf("user_%s@test.local", randomID()),
		Password:  DefaultPassword,
		FirstName: "Test",
		LastName:  "User",
		Role:      model.RoleJobSeeker,
	}
	for _, fn := range opts {
		fn(o)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(o.Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fixtures: failed to hash password: %v", err)
	}

	user := &model.User{
		Email:        model.NormalizeEmail(o.Email),
		PasswordHash: string(hash),
		FirstName:    o.FirstName,
		LastName:     o.LastName,
		Role:         o.Role,
		IsActive:     !o.Inactive,
	}
	var profile *model.UserProfile
	if o.Role == model.RoleJobSeeker {
		profile = &model.UserProfile{}
	}
	if err := f.repos.Users.Create(ctx(t), user, profile); err != nil {
		t.Fatalf("fixtures: failed to create user: %v", err)
	}
	return user
}

// CreateEmployer creates an active employer
func (f *Factory) CreateEmployer(t *testing.T, opts ...func(*UserOpts)) *model.User {
	t.Helper()
	return f.CreateUser(t, append([]func(*UserOpts){func(o *UserOpts) {
		o.Role = model.RoleEmployer
	}}, opts...)...)
}

// CreateAdmin creates an admin user
func (f *Factory) CreateAdmin(t *testing.T) *model.User {
	t.Helper()
	return f.CreateUser(t, func(o *UserOpts) {
		o.Role = model.RoleAdmin
	})
}

// ============================================================================
// Company Fixtures
// ============================================================================

// CreateCompany creates a company with a random slug
func (f *Factory) CreateCompany(t *testing.T, opts ...func(*model.Company)) *model.Company {
	t.Helper()

	id := randomID()
	c := &model.Company{
		Name: "Company " + id,
		Slug: "company-" + id,
	}
	for _, fn := range opts {
		fn(c)
	}
	if err := f.repos.Companies.Create(ctx(t), c); err != nil {
		t.Fatalf("fixtures: failed to create company: %v", err)
	}
	return c
}

// AddMember adds an active membership of user in company
func (f *Factory) AddMember(t *testing.T, user *model.User, company *model.Company, role model.MembershipRole) *model.CompanyMembership {
	t.Helper()

	m := &model.CompanyMembership{
		UserID:    user.ID,
		CompanyID: company.ID,
		Role:      role,
		IsActive:  true,
	}
	if err := f.repos.Memberships.Create(ctx(t), m); err != nil {
		t.Fatalf("fixtures: failed to create membership: %v", err)
	}
	return m
}

// CreateEmployerWithCompany creates an employer who administers a new company
func (f *Factory) CreateEmployerWithCompany(t *testing.T) (*model.User, *model.Company) {
	t.Helper()

	emp := f.CreateEmployer(t)
	c := f.CreateCompany(t)
	f.AddMember(t, emp, c, model.MembershipAdmin)
	return emp, c
}

// ============================================================================
// Category Fixtures
// ============================================================================

// CreateCategory creates an active category
func (f *Factory) CreateCategory(t *testing.T, name string) *model.JobCategory {
	t.Helper()

	c := &model.JobCategory{
		Name:     name,
		Slug:     slug.Make(name) + "-" + randomID(),
		IsActive: true,
	}
	if err := f.repos.Categories.Create(ctx(t), c); err != nil {
		t.Fatalf("fixtures: failed to create category: %v", err)
	}
	return c
}

// ============================================================================
// Job Fixtures
// ============================================================================

// JobOpts customizes job creation
type JobOpts struct {
	Title           string
	Description     string
	Location        *string
	CategoryID      *string
	RemoteType      model.RemoteType
	EmploymentType  model.EmploymentType
	ExperienceLevel model.ExperienceLevel
	SalaryMin       *int64
	SalaryMax       *int64
	Skills          []string
	Deadline        *time.Time
	Status          model.JobStatus
	IsFeatured      bool
	IsUrgent        bool
}

// CreateJob creates an active job posted by poster in company
func (f *Factory) CreateJob(t *testing.T, poster *model.User, company *model.Company, opts ...func(*JobOpts)) *model.Job {
	t.Helper()

	o := &JobOpts{
		Title:          "Job " + randomID(),
		Description:    "A job created by fixtures",
		RemoteType:     model.RemoteOffice,
		EmploymentType: model.EmploymentFullTime,
		Status:         model.JobActive,
	}
	for _, fn := range opts {
		fn(o)
	}

	j := &model.Job{
		CompanyID:           company.ID,
		PostedBy:            poster.ID,
		CategoryID:          o.CategoryID,
		Title:               o.Title,
		Slug:                slug.Make(o.Title) + "-" + randomID(),
		Description:         o.Description,
		Location:            o.Location,
		RemoteType:          o.RemoteType,
		EmploymentType:      o.EmploymentType,
		ExperienceLevel:     o.ExperienceLevel,
		SalaryMin:           o.SalaryMin,
		SalaryMax:           o.SalaryMax,
		Currency:            "USD",
		SalaryType:          model.SalaryYearly,
		SkillsRequired:      o.Skills,
		ApplicationDeadline: o.Deadline,
		Status:              o.Status,
		IsFeatured:          o.IsFeatured,
		IsUrgent:            o.IsUrgent,
	}
	if err := f.repos.Jobs.Create(ctx(t), j); err != nil {
		t.Fatalf("fixtures: failed to create job: %v", err)
	}
	return j
}

// Apply records an application of user to job
func (f *Factory) Apply(t *testing.T, user *model.User, job *model.Job) *model.JobApplication {
	t.Helper()

	a := &model.JobApplication{JobID: job.ID, UserID: user.ID, Status: "pending"}
	if err := f.repos.Applications.Create(ctx(t), a); err != nil {
		t.Fatalf("fixtures: failed to create application: %v", err)
	}
	return a
}
