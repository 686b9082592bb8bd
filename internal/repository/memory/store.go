// Package memory provides in-memory implementations of the repository
// interfaces. It enforces the same uniqueness rules as the postgres schema
// (user email, company slug, job slug per company) so that services behave
// identically against either backend. Safe for concurrent access. Intended
// for tests and local development.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fuzball1989/job-posting-portal/internal/database"
	"github.com/fuzball1989/job-posting-portal/internal/model"
)

// Store holds every table. Repositories are views onto it obtained from
// Users, Companies, Memberships, Categories and Jobs.
type Store struct {
	mu sync.RWMutex

	users        map[string]*model.User
	emails       map[string]string // email -> user id
	profiles     map[string]*model.UserProfile
	companies    map[string]*model.Company
	companySlugs map[string]string
	memberships  []*model.CompanyMembership // insertion order
	categories   map[string]*model.JobCategory
	jobs         map[string]*model.Job
	jobSlugs     map[string]string // company id + "/" + slug -> job id
	applications map[string]*model.JobApplication

	now func() time.Time
}

// New returns a new empty Store.
func New() *Store {
	return &Store{
		users:        make(map[string]*model.User),
		emails:       make(map[string]string),
		profiles:     make(map[string]*model.UserProfile),
		companies:    make(map[string]*model.Company),
		companySlugs: make(map[string]string),
		categories:   make(map[string]*model.JobCategory),
		jobs:         make(map[string]*model.Job),
		jobSlugs:     make(map[string]string),
		applications: make(map[string]*model.JobApplication),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// SetClock overrides the time source used for timestamps.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Ping always succeeds for the memory store.
func (s *Store) Ping(_ context.Context) error { return nil }

// Close is a no-op for the memory store.
func (s *Store) Close() error { return nil }

func (s *Store) Users() *UserRepository             { return &UserRepository{s: s} }
func (s *Store) Companies() *CompanyRepository      { return &CompanyRepository{s: s} }
func (s *Store) Memberships() *MembershipRepository { return &MembershipRepository{s: s} }
func (s *Store) Categories() *CategoryRepository    { return &CategoryRepository{s: s} }
func (s *Store) Jobs() *JobRepository               { return &JobRepository{s: s} }
func (s *Store) Applications() *ApplicationRepository {
	return &ApplicationRepository{s: s}
}

func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func duplicate(what string) error {
	return fmt.Errorf("%w: %s", database.ErrDuplicate, what)
}

// ──────────────────────────────────────────────────
// Users
// ──────────────────────────────────────────────────

// UserRepository is the memory-backed user store.
type UserRepository struct{ s *Store }

// Create inserts a user and optional profile. A taken email fails with
// database.ErrDuplicate.
func (r *UserRepository) Create(_ context.Context, user *model.User, profile *model.UserProfile) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.emails[user.Email]; taken {
		return duplicate("email")
	}
	ensureID(&user.ID)
	if _, taken := s.users[user.ID]; taken {
		return duplicate("user id")
	}

	now := s.now()
	user.CreatedAt, user.UpdatedAt = now, now

	stored := *user
	stored.Profile = nil
	s.users[user.ID] = &stored
	s.emails[user.Email] = user.ID

	if profile != nil {
		ensureID(&profile.ID)
		profile.UserID = user.ID
		profile.CreatedAt, profile.UpdatedAt = now, now
		p := *profile
		s.profiles[user.ID] = &p
	}
	return nil
}

// GetByID returns the user with profile, or nil.
func (r *UserRepository) GetByID(_ context.Context, id string) (*model.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	out := *u
	if p, ok := s.profiles[id]; ok {
		pc := *p
		out.Profile = &pc
	}
	return &out, nil
}

// GetByEmail returns the user or nil.
func (r *UserRepository) GetByEmail(_ context.Context, email string) (*model.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[email]
	if !ok {
		return nil, nil
	}
	out := *s.users[id]
	return &out, nil
}

// TouchLastLogin stamps the last login time.
func (r *UserRepository) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return database.ErrNotFound
	}
	u.LastLoginAt = &at
	return nil
}

// SetActive enables or disables an account.
func (r *UserRepository) SetActive(_ context.Context, id string, active bool) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return database.ErrNotFound
	}
	u.IsActive = active
	u.UpdatedAt = s.now()
	return nil
}

// ──────────────────────────────────────────────────
// Companies and memberships
// ──────────────────────────────────────────────────

// CompanyRepository is the memory-backed company store.
type CompanyRepository struct{ s *Store }

// Create inserts a company. A taken slug fails with database.ErrDuplicate.
func (r *CompanyRepository) Create(_ context.Context, c *model.Company) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.companySlugs[c.Slug]; taken {
		return duplicate("company slug")
	}
	ensureID(&c.ID)
	now := s.now()
	c.CreatedAt, c.UpdatedAt = now, now

	stored := *c
	s.companies[c.ID] = &stored
	s.companySlugs[c.Slug] = c.ID
	return nil
}

// GetBySlug returns the company or nil.
func (r *CompanyRepository) GetBySlug(_ context.Context, slug string) (*model.Company, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.companySlugs[slug]
	if !ok {
		return nil, nil
	}
	out := *s.companies[id]
	return &out, nil
}

// MembershipRepository is the memory-backed membership store.
type MembershipRepository struct{ s *Store }

// Create inserts a membership. A user may join a company once.
func (r *MembershipRepository) Create(_ context.Context, m *model.CompanyMembership) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.memberships {
		if existing.UserID == m.UserID && existing.CompanyID == m.CompanyID {
			return duplicate("membership")
		}
	}
	ensureID(&m.ID)
	if m.JoinedAt.IsZero() {
		m.JoinedAt = s.now()
	}

	stored := *m
	stored.User, stored.Company = nil, nil
	s.memberships = append(s.memberships, &stored)
	return nil
}

// ListActiveByUser returns active memberships with company, in insertion
// order.
func (r *MembershipRepository) ListActiveByUser(_ context.Context, userID string) ([]*model.CompanyMembership, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.CompanyMembership
	for _, m := range s.memberships {
		if m.UserID != userID || !m.IsActive {
			continue
		}
		mc := *m
		if c, ok := s.companies[m.CompanyID]; ok {
			cc := *c
			mc.Company = &cc
		}
		out = append(out, &mc)
	}
	return out, nil
}

// GetActive returns the active membership of userID in companyID, or nil.
func (r *MembershipRepository) GetActive(_ context.Context, userID, companyID string) (*model.CompanyMembership, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.memberships {
		if m.UserID == userID && m.CompanyID == companyID && m.IsActive {
			mc := *m
			return &mc, nil
		}
	}
	return nil, nil
}

// ──────────────────────────────────────────────────
// Categories and applications
// ──────────────────────────────────────────────────

// CategoryRepository is the memory-backed category store.
type CategoryRepository struct{ s *Store }

// Create inserts a category. A taken slug fails with database.ErrDuplicate.
func (r *CategoryRepository) Create(_ context.Context, c *model.JobCategory) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categories {
		if existing.Slug == c.Slug {
			return duplicate("category slug")
		}
	}
	ensureID(&c.ID)
	stored := *c
	s.categories[c.ID] = &stored
	return nil
}

// GetBySlug returns the category or nil.
func (r *CategoryRepository) GetBySlug(_ context.Context, slug string) (*model.JobCategory, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Slug == slug {
			out := *c
			return &out, nil
		}
	}
	return nil, nil
}

// Exists reports whether an active category has the given id.
func (r *CategoryRepository) Exists(_ context.Context, id string) (bool, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	return ok && c.IsActive, nil
}

// ListActiveWithCounts returns active categories by name with active job
// counts.
func (r *CategoryRepository) ListActiveWithCounts(_ context.Context) ([]*model.CategoryWithCount, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int64)
	for _, j := range s.jobs {
		if j.Status == model.JobActive && j.CategoryID != nil {
			counts[*j.CategoryID]++
		}
	}

	var out []*model.CategoryWithCount
	for _, c := range s.categories {
		if !c.IsActive {
			continue
		}
		out = append(out, &model.CategoryWithCount{JobCategory: *c, JobCount: counts[c.ID]})
	}
	sortCategories(out)
	return out, nil
}

// ApplicationRepository is the memory-backed application store. Only
// creation is supported; applications are counted on jobs.
type ApplicationRepository struct{ s *Store }

// Create records an application. A user may apply to a job once.
func (r *ApplicationRepository) Create(_ context.Context, a *model.JobApplication) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[a.JobID]; !ok {
		return fmt.Errorf("%w: job %s", database.ErrNotFound, a.JobID)
	}
	for _, existing := range s.applications {
		if existing.JobID == a.JobID && existing.UserID == a.UserID {
			return duplicate("application")
		}
	}
	ensureID(&a.ID)
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now()
	}
	stored := *a
	stored.Job = nil
	s.applications[a.ID] = &stored
	return nil
}
