package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuzball1989/job-posting-portal/internal/model"
	"github.com/fuzball1989/job-posting-portal/internal/search"
)

// ============================================================================
// Mock Repositories
// ============================================================================

type mockUserRepo struct {
	getByIDFunc func(ctx context.Context, id string) (*model.User, error)
}

func (m *mockUserRepo) Create(context.Context, *model.User, *model.UserProfile) error { return nil }

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(context.Context, string) (*model.User, error) { return nil, nil }

func (m *mockUserRepo) TouchLastLogin(context.Context, string, time.Time) error { return nil }

type mockMembershipRepo struct {
	listActiveByUserFunc func(ctx context.Context, userID string) ([]*model.CompanyMembership, error)
	getActiveFunc        func(ctx context.Context, userID, companyID string) (*model.CompanyMembership, error)
}

func (m *mockMembershipRepo) ListActiveByUser(ctx context.Context, userID string) ([]*model.CompanyMembership, error) {
	if m.listActiveByUserFunc != nil {
		return m.listActiveByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockMembershipRepo) GetActive(ctx context.Context, userID, companyID string) (*model.CompanyMembership, error) {
	if m.getActiveFunc != nil {
		return m.getActiveFunc(ctx, userID, companyID)
	}
	return nil, nil
}

type mockJobRepo struct {
	getByIDFunc func(ctx context.Context, id string) (*model.Job, error)
}

func (m *mockJobRepo) Create(context.Context, *model.Job) error { return nil }
func (m *mockJobRepo) Update(context.Context, *model.Job) error { return nil }
func (m *mockJobRepo) Delete(context.Context, string) error     { return nil }

func (m *mockJobRepo) GetByID(ctx context.Context, id string) (*model.Job, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockJobRepo) GetBySlug(context.Context, string, string) (*model.Job, error) { return nil, nil }

func (m *mockJobRepo) SlugExists(context.Context, string, string, string) (bool, error) {
	return false, nil
}

func (m *mockJobRepo) IncrementViews(context.Context, string) (int64, error) { return 0, nil }

func (m *mockJobRepo) Search(context.Context, search.Query) ([]*model.Job, int64, error) {
	return nil, 0, nil
}

func (m *mockJobRepo) ListByPoster(context.Context, string, int, int) ([]*model.Job, int64, error) {
	return nil, 0, nil
}

func (m *mockJobRepo) CloseExpired(context.Context, time.Time) (int64, error) { return 0, nil }

func membership(companyID string, role model.MembershipRole, active bool) *model.CompanyMembership {
	return &model.CompanyMembership{CompanyID: companyID, Role: role, IsActive: active}
}

// ============================================================================
// CanPostJobs
// ============================================================================

func TestPolicy_CanPostJobs(t *testing.T) {
	t.Parallel()

	employer := &model.User{ID: "emp", Role: model.RoleEmployer, IsActive: true}
	seeker := &model.User{ID: "seeker", Role: model.RoleJobSeeker, IsActive: true}

	tests := []struct {
		name        string
		user        *model.User
		memberships []*model.CompanyMembership
		wantCompany string
		wantErr     error
	}{
		{
			name:    "unknown user",
			wantErr: ErrUserNotFound,
		},
		{
			name:    "job seeker",
			user:    seeker,
			wantErr: ErrOnlyEmployers,
		},
		{
			name:    "employer without membership",
			user:    employer,
			wantErr: ErrNoCompanyMembership,
		},
		{
			name:        "plain member cannot post",
			user:        employer,
			memberships: []*model.CompanyMembership{membership("c1", model.MembershipMember, true)},
			wantErr:     ErrNoCompanyMembership,
		},
		{
			name: "first qualifying membership wins",
			user: employer,
			memberships: []*model.CompanyMembership{
				membership("c1", model.MembershipMember, true),
				membership("c2", model.MembershipRecruiter, true),
				membership("c3", model.MembershipAdmin, true),
			},
			wantCompany: "c2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewPolicy(PolicyConfig{
				UserRepo: &mockUserRepo{getByIDFunc: func(context.Context, string) (*model.User, error) {
					return tt.user, nil
				}},
				MembershipRepo: &mockMembershipRepo{listActiveByUserFunc: func(context.Context, string) ([]*model.CompanyMembership, error) {
					return tt.memberships, nil
				}},
				JobRepo: &mockJobRepo{},
			})

			companyID, err := p.CanPostJobs(context.Background(), "any")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCompany, companyID)
		})
	}
}

func TestPolicy_CanPostJobs_Messages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "only employers can post jobs", ErrOnlyEmployers.Error())
	assert.Equal(t, "must be associated with a company", ErrNoCompanyMembership.Error())
}

func TestPolicy_CanPostJobs_RepoError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	p := NewPolicy(PolicyConfig{
		UserRepo: &mockUserRepo{getByIDFunc: func(context.Context, string) (*model.User, error) {
			return nil, boom
		}},
		MembershipRepo: &mockMembershipRepo{},
		JobRepo:        &mockJobRepo{},
	})

	_, err := p.CanPostJobs(context.Background(), "u")
	assert.ErrorIs(t, err, boom)
}

// ============================================================================
// CanModifyJob
// ============================================================================

func TestPolicy_CanModifyJob(t *testing.T) {
	t.Parallel()

	job := &model.Job{ID: "j1", CompanyID: "acme", PostedBy: "creator"}

	tests := []struct {
		name       string
		userID     string
		membership *model.CompanyMembership
		want       bool
	}{
		{name: "creator without membership", userID: "creator", want: true},
		{name: "company admin", userID: "boss", membership: membership("acme", model.MembershipAdmin, true), want: true},
		{name: "company recruiter", userID: "hr", membership: membership("acme", model.MembershipRecruiter, true), want: true},
		{name: "plain member", userID: "dev", membership: membership("acme", model.MembershipMember, true), want: false},
		{name: "unrelated employer", userID: "stranger", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewPolicy(PolicyConfig{
				UserRepo: &mockUserRepo{},
				MembershipRepo: &mockMembershipRepo{getActiveFunc: func(_ context.Context, userID, companyID string) (*model.CompanyMembership, error) {
					if userID == tt.userID && companyID == "acme" {
						return tt.membership, nil
					}
					return nil, nil
				}},
				JobRepo: &mockJobRepo{getByIDFunc: func(context.Context, string) (*model.Job, error) {
					return job, nil
				}},
			})

			ok, err := p.CanModifyJob(context.Background(), "j1", tt.userID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestPolicy_CanModifyJob_NotFound(t *testing.T) {
	t.Parallel()

	p := NewPolicy(PolicyConfig{
		UserRepo:       &mockUserRepo{},
		MembershipRepo: &mockMembershipRepo{},
		JobRepo:        &mockJobRepo{},
	})

	_, err := p.CanModifyJob(context.Background(), "missing", "u")
	assert.ErrorIs(t, err, ErrJobNotFound)
}
