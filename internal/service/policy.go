package service

import (
	"context"

	"github.com/fuzball1989/job-posting-portal/internal/model"
)

// Policy answers who may post and modify jobs.
type Policy struct {
	userRepo       UserRepository
	membershipRepo MembershipRepository
	jobRepo        JobRepository
}

// PolicyConfig holds the policy's dependencies
type PolicyConfig struct {
	UserRepo       UserRepository
	MembershipRepo MembershipRepository
	JobRepo        JobRepository
}

// NewPolicy creates a new authorization policy
func NewPolicy(cfg PolicyConfig) *Policy {
	return &Policy{
		userRepo:       cfg.UserRepo,
		membershipRepo: cfg.MembershipRepo,
		jobRepo:        cfg.JobRepo,
	}
}

// CanPostJobs returns the company a user posts jobs for: the company of
// their earliest active admin or recruiter membership.
func (p *Policy) CanPostJobs(ctx context.Context, userID string) (string, error) {
	user, err := p.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if !user.IsEmployer() {
		return "", ErrOnlyEmployers
	}

	memberships, err := p.membershipRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	for _, m := range memberships {
		if m.CanManageJobs() {
			return m.CompanyID, nil
		}
	}
	return "", ErrNoCompanyMembership
}

// CanModifyJob reports whether userID may update or delete the job.
func (p *Policy) CanModifyJob(ctx context.Context, jobID, userID string) (bool, error) {
	job, err := p.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return false, err
	}
	if job == nil {
		return false, ErrJobNotFound
	}
	return p.canModify(ctx, job, userID)
}

// canModify: the poster, or an active admin/recruiter of the job's company.
func (p *Policy) canModify(ctx context.Context, job *model.Job, userID string) (bool, error) {
	if job.PostedBy == userID {
		return true, nil
	}
	m, err := p.membershipRepo.GetActive(ctx, userID, job.CompanyID)
	if err != nil {
		return false, err
	}
	return m != nil && m.CanManageJobs(), nil
}
