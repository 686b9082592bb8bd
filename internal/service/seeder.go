package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fuzball1989/job-posting-portal/internal/model"
	"github.com/fuzball1989/job-posting-portal/internal/slug"
)

// SeedCompanyRepository is the company surface the seeder writes through
type SeedCompanyRepository interface {
	Create(ctx context.Context, company *model.Company) error
	GetBySlug(ctx context.Context, slug string) (*model.Company, error)
}

// SeedCategoryRepository is the category surface the seeder writes through
type SeedCategoryRepository interface {
	Create(ctx context.Context, c *model.JobCategory) error
	GetBySlug(ctx context.Context, slug string) (*model.JobCategory, error)
}

// SeedMembershipRepository is the membership surface the seeder writes through
type SeedMembershipRepository interface {
	Create(ctx context.Context, m *model.CompanyMembership) error
	GetActive(ctx context.Context, userID, companyID string) (*model.CompanyMembership, error)
}

// SeederService loads demo data for development. Every step is keyed by a
// natural key (slug or email) and skips rows that already exist, so running
// it twice is harmless.
type SeederService struct {
	users       UserRepository
	companies   SeedCompanyRepository
	categories  SeedCategoryRepository
	memberships SeedMembershipRepository
	jobs        JobRepository
	bcryptCost  int
	logger      *slog.Logger
}

// SeederConfig holds the seeder's dependencies
type SeederConfig struct {
	Users       UserRepository
	Companies   SeedCompanyRepository
	Categories  SeedCategoryRepository
	Memberships SeedMembershipRepository
	Jobs        JobRepository
	BcryptCost  int // Default: 12
	Logger      *slog.Logger
}

// NewSeederService creates a new seeder service
func NewSeederService(cfg SeederConfig) *SeederService {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = defaultBcryptCost
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &SeederService{
		users:       cfg.Users,
		companies:   cfg.Companies,
		categories:  cfg.Categories,
		memberships: cfg.Memberships,
		jobs:        cfg.Jobs,
		bcryptCost:  cfg.BcryptCost,
		logger:      cfg.Logger,
	}
}

// SeedResult counts the rows created by a run
type SeedResult struct {
	Categories  int   `json:"categories"`
	Companies   int   `json:"companies"`
	Users       int   `json:"users"`
	Memberships int   `json:"memberships"`
	Jobs        int   `json:"jobs"`
	Duration    int64 `json:"duration_ms"`
}

// SeedAccount is a demo login
type SeedAccount struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Role      model.Role
}

// SeedAccounts are the demo logins created by Seed.
var SeedAccounts = []SeedAccount{
	{Email: "admin@jobportal.com", Password: "Admin123!", FirstName: "Admin", LastName: "User", Role: model.RoleAdmin},
	{Email: "employer@techcorp.com", Password: "Employer123!", FirstName: "John", LastName: "Recruiter", Phone: "+15550101", Role: model.RoleEmployer},
	{Email: "jane.doe@example.com", Password: "JobSeeker123!", FirstName: "Jane", LastName: "Doe", Phone: "+15550102", Role: model.RoleJobSeeker},
	{Email: "mike.smith@example.com", Password: "JobSeeker123!", FirstName: "Mike", LastName: "Smith", Role: model.RoleJobSeeker},
}

type seedCategory struct {
	name, slug, description, icon string
}

var seedCategories = []seedCategory{
	{"Software Development", "software-development", "Programming, web development, software engineering", "code"},
	{"Data Science", "data-science", "Data analysis, machine learning, AI", "chart"},
	{"Design", "design", "UI/UX design, graphic design, product design", "palette"},
	{"Marketing", "marketing", "Digital marketing, content marketing, SEO", "megaphone"},
	{"Sales", "sales", "Sales representative, account manager, business development", "trending-up"},
	{"Customer Support", "customer-support", "Customer service, technical support", "headphones"},
	{"Human Resources", "human-resources", "HR, recruiting, people operations", "users"},
	{"Finance", "finance", "Accounting, financial analysis, investment", "dollar-sign"},
	{"Operations", "operations", "Business operations, project management", "settings"},
	{"Executive", "executive", "C-level, VP, director positions", "star"},
}

type seedCompany struct {
	name, slug, description, location, website string
}

var seedCompanies = []seedCompany{
	{"TechCorp Inc.", "techcorp-inc", "Leading technology company focused on innovative software solutions.", "San Francisco, CA", "https://techcorp.com"},
	{"StartupXYZ", "startupxyz", "Fast-growing startup revolutionizing the fintech industry.", "New York, NY", "https://startupxyz.com"},
	{"Global Solutions Ltd.", "global-solutions-ltd", "International consulting firm helping businesses transform digitally.", "London, UK", "https://globalsolutions.com"},
}

// seedMembership gives an account posting rights in a company.
type seedMembership struct {
	email, company string
	role           model.MembershipRole
	title          string
}

var seedMemberships = []seedMembership{
	{"employer@techcorp.com", "techcorp-inc", model.MembershipAdmin, "Senior Recruiter"},
	{"admin@jobportal.com", "startupxyz", model.MembershipAdmin, "Platform Admin"},
	{"admin@jobportal.com", "global-solutions-ltd", model.MembershipAdmin, "Platform Admin"},
}

type seedJob struct {
	company, poster, category string
	job                       model.Job
}

func int64p(v int64) *int64 { return &v }
func strp(v string) *string { return &v }

var seedJobs = []seedJob{
	{
		company: "techcorp-inc", poster: "employer@techcorp.com", category: "software-development",
		job: model.Job{
			Title:            "Senior Full Stack Developer",
			Description:      "We are looking for an experienced full-stack developer to join our growing team. You will develop and maintain web applications using modern technologies.",
			Requirements:     strp("5+ years of full-stack development. React, Node.js and TypeScript. PostgreSQL and Redis."),
			Responsibilities: strp("Develop and maintain web applications. Review code. Mentor junior developers."),
			Benefits:         strp("Health, dental and vision insurance. 401(k) match. Flexible work."),
			Location:         strp("San Francisco, CA"),
			RemoteType:       model.RemoteHybrid,
			EmploymentType:   model.EmploymentFullTime,
			ExperienceLevel:  model.ExperienceSenior,
			SalaryMin:        int64p(140000),
			SalaryMax:        int64p(180000),
			Currency:         "USD",
			SalaryType:       model.SalaryYearly,
			SkillsRequired:   []string{"React", "Node.js", "TypeScript", "PostgreSQL", "AWS"},
			NiceToHaveSkills: []string{"GraphQL", "Docker", "Kubernetes"},
			IsFeatured:       true,
		},
	},
	{
		company: "startupxyz", poster: "admin@jobportal.com", category: "design",
		job: model.Job{
			Title:            "UX/UI Designer",
			Description:      "Join our design team to create intuitive user experiences for our fintech products, working closely with product managers and engineers.",
			Requirements:     strp("3+ years of UX/UI design. Figma. A portfolio. User research experience."),
			Responsibilities: strp("Design for web and mobile. Run usability tests. Maintain the design system."),
			Location:         strp("New York, NY"),
			RemoteType:       model.RemoteOffice,
			EmploymentType:   model.EmploymentFullTime,
			ExperienceLevel:  model.ExperienceMid,
			SalaryMin:        int64p(85000),
			SalaryMax:        int64p(110000),
			Currency:         "USD",
			SalaryType:       model.SalaryYearly,
			SkillsRequired:   []string{"Figma", "Adobe Creative Suite", "User Research", "Prototyping"},
			NiceToHaveSkills: []string{"HTML", "CSS", "JavaScript"},
			IsUrgent:         true,
		},
	},
	{
		company: "techcorp-inc", poster: "employer@techcorp.com", category: "data-science",
		job: model.Job{
			Title:            "Data Scientist",
			Description:      "We are seeking a skilled data scientist to derive insights from large datasets and build machine learning models that improve our products.",
			Requirements:     strp("4+ years in data science. Python and R. Machine learning frameworks. Strong SQL."),
			Location:         strp("Remote"),
			RemoteType:       model.RemoteRemote,
			EmploymentType:   model.EmploymentFullTime,
			ExperienceLevel:  model.ExperienceSenior,
			SalaryMin:        int64p(130000),
			SalaryMax:        int64p(160000),
			Currency:         "USD",
			SalaryType:       model.SalaryYearly,
			SkillsRequired:   []string{"Python", "R", "Machine Learning", "SQL", "Statistics"},
			NiceToHaveSkills: []string{"TensorFlow", "PyTorch", "Spark"},
		},
	},
	{
		company: "global-solutions-ltd", poster: "admin@jobportal.com", category: "software-development",
		job: model.Job{
			Title:            "Frontend Developer Intern",
			Description:      "An opportunity for a student or recent graduate to gain hands-on experience in frontend development with our team.",
			Requirements:     strp("Studying Computer Science or a related field. HTML, CSS and JavaScript basics."),
			Benefits:         strp("Internship stipend. Mentorship. Potential full-time offer."),
			Location:         strp("London, UK"),
			RemoteType:       model.RemoteHybrid,
			EmploymentType:   model.EmploymentInternship,
			ExperienceLevel:  model.ExperienceEntry,
			SalaryMin:        int64p(2000),
			SalaryMax:        int64p(2500),
			Currency:         "GBP",
			SalaryType:       model.SalaryMonthly,
			SkillsRequired:   []string{"HTML", "CSS", "JavaScript"},
			NiceToHaveSkills: []string{"React", "Git", "TypeScript"},
		},
	},
}

// Seed creates the demo categories, companies, accounts, memberships and
// active jobs that do not exist yet.
func (s *SeederService) Seed(ctx context.Context) (*SeedResult, error) {
	start := time.Now()
	result := &SeedResult{}

	categories := make(map[string]string, len(seedCategories))
	for _, sc := range seedCategories {
		id, created, err := s.ensureCategory(ctx, sc)
		if err != nil {
			return nil, err
		}
		categories[sc.slug] = id
		if created {
			result.Categories++
		}
	}

	companies := make(map[string]string, len(seedCompanies))
	for _, sc := range seedCompanies {
		id, created, err := s.ensureCompany(ctx, sc)
		if err != nil {
			return nil, err
		}
		companies[sc.slug] = id
		if created {
			result.Companies++
		}
	}

	users := make(map[string]string, len(SeedAccounts))
	for _, acct := range SeedAccounts {
		id, created, err := s.ensureUser(ctx, acct)
		if err != nil {
			return nil, err
		}
		users[acct.Email] = id
		if created {
			result.Users++
		}
	}

	for _, sm := range seedMemberships {
		created, err := s.ensureMembership(ctx, users[sm.email], companies[sm.company], sm)
		if err != nil {
			return nil, err
		}
		if created {
			result.Memberships++
		}
	}

	for _, sj := range seedJobs {
		created, err := s.ensureJob(ctx, sj, companies[sj.company], users[sj.poster], categories[sj.category])
		if err != nil {
			return nil, err
		}
		if created {
			result.Jobs++
		}
	}

	result.Duration = time.Since(start).Milliseconds()
	s.logger.InfoContext(ctx, "seed complete",
		slog.Int("categories", result.Categories),
		slog.Int("companies", result.Companies),
		slog.Int("users", result.Users),
		slog.Int("memberships", result.Memberships),
		slog.Int("jobs", result.Jobs),
	)
	return result, nil
}

func (s *SeederService) ensureCategory(ctx context.Context, sc seedCategory) (string, bool, error) {
	existing, err := s.categories.GetBySlug(ctx, sc.slug)
	if err != nil {
		return "", false, fmt.Errorf("seed category %s: %w", sc.slug, err)
	}
	if existing != nil {
		return existing.ID, false, nil
	}

	c := &model.JobCategory{
		ID:          uuid.NewString(),
		Name:        sc.name,
		Slug:        sc.slug,
		Description: strp(sc.description),
		Icon:        strp(sc.icon),
		IsActive:    true,
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return "", false, fmt.Errorf("seed category %s: %w", sc.slug, err)
	}
	return c.ID, true, nil
}

func (s *SeederService) ensureCompany(ctx context.Context, sc seedCompany) (string, bool, error) {
	existing, err := s.companies.GetBySlug(ctx, sc.slug)
	if err != nil {
		return "", false, fmt.Errorf("seed company %s: %w", sc.slug, err)
	}
	if existing != nil {
		return existing.ID, false, nil
	}

	c := &model.Company{
		ID:          uuid.NewString(),
		Name:        sc.name,
		Slug:        sc.slug,
		Description: strp(sc.description),
		Location:    strp(sc.location),
		Website:     strp(sc.website),
		IsVerified:  true,
	}
	if err := s.companies.Create(ctx, c); err != nil {
		return "", false, fmt.Errorf("seed company %s: %w", sc.slug, err)
	}
	return c.ID, true, nil
}

func (s *SeederService) ensureUser(ctx context.Context, acct SeedAccount) (string, bool, error) {
	email := model.NormalizeEmail(acct.Email)
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", false, fmt.Errorf("seed user %s: %w", email, err)
	}
	if existing != nil {
		return existing.ID, false, nil
	}

	hash, err := hashPassword(acct.Password, s.bcryptCost)
	if err != nil {
		return "", false, err
	}
	user := &model.User{
		ID:              uuid.NewString(),
		Email:           email,
		PasswordHash:    hash,
		FirstName:       acct.FirstName,
		LastName:        acct.LastName,
		Role:            acct.Role,
		IsActive:        true,
		IsEmailVerified: true,
	}
	if acct.Phone != "" {
		user.Phone = strp(acct.Phone)
	}
	var profile *model.UserProfile
	if acct.Role == model.RoleJobSeeker {
		profile = &model.UserProfile{ID: uuid.NewString(), UserID: user.ID}
	}
	if err := s.users.Create(ctx, user, profile); err != nil {
		return "", false, fmt.Errorf("seed user %s: %w", email, err)
	}
	return user.ID, true, nil
}

func (s *SeederService) ensureMembership(ctx context.Context, userID, companyID string, sm seedMembership) (bool, error) {
	existing, err := s.memberships.GetActive(ctx, userID, companyID)
	if err != nil {
		return false, fmt.Errorf("seed membership %s/%s: %w", sm.email, sm.company, err)
	}
	if existing != nil {
		return false, nil
	}

	m := &model.CompanyMembership{
		ID:        uuid.NewString(),
		UserID:    userID,
		CompanyID: companyID,
		Role:      sm.role,
		Title:     strp(sm.title),
		IsActive:  true,
		JoinedAt:  time.Now().UTC(),
	}
	if err := s.memberships.Create(ctx, m); err != nil {
		return false, fmt.Errorf("seed membership %s/%s: %w", sm.email, sm.company, err)
	}
	return true, nil
}

func (s *SeederService) ensureJob(ctx context.Context, sj seedJob, companyID, posterID, categoryID string) (bool, error) {
	jobSlug := slug.Make(sj.job.Title)
	exists, err := s.jobs.SlugExists(ctx, companyID, jobSlug, "")
	if err != nil {
		return false, fmt.Errorf("seed job %s: %w", jobSlug, err)
	}
	if exists {
		return false, nil
	}

	job := sj.job
	job.ID = uuid.NewString()
	job.CompanyID = companyID
	job.PostedBy = posterID
	job.Slug = jobSlug
	job.Status = model.JobActive
	if categoryID != "" {
		job.CategoryID = strp(categoryID)
	}
	// Copy slices so repeated runs never share backing arrays.
	job.SkillsRequired = append([]string(nil), sj.job.SkillsRequired...)
	job.NiceToHaveSkills = append([]string(nil), sj.job.NiceToHaveSkills...)

	if err := s.jobs.Create(ctx, &job); err != nil {
		return false, fmt.Errorf("seed job %s: %w", jobSlug, err)
	}
	return true, nil
}
