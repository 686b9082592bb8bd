package repository

import (
	"context"

	"github.com/fuzball1989/job-posting-portal/internal/database"
	"github.com/fuzball1989/job-posting-portal/internal/model"
)

// CompanyRepository handles company and membership data access
type CompanyRepository struct {
	db *database.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *database.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create inserts a company
func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) error {
	return database.Translate(r.db.Gorm(ctx).Create(company).Error)
}

// GetBySlug retrieves a company by slug
func (r *CompanyRepository) GetBySlug(ctx context.Context, slug string) (*model.Company, error) {
	var company model.Company
	err := r.db.Gorm(ctx).Where("slug = ?", slug).Take(&company).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// MembershipRepository handles company membership data access
type MembershipRepository struct {
	db *database.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *database.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create inserts a membership
func (r *MembershipRepository) Create(ctx context.Context, m *model.CompanyMembership) error {
	return database.Translate(r.db.Gorm(ctx).Omit("User", "Company").Create(m).Error)
}

// ListActiveByUser returns active memberships with their company, in the
// order they were created
func (r *MembershipRepository) ListActiveByUser(ctx context.Context, userID string) ([]*model.CompanyMembership, error) {
	if !isUUID(userID) {
		return nil, nil
	}
	var memberships []*model.CompanyMembership
	err := r.db.Gorm(ctx).
		Preload("Company").
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("joined_at, id").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// GetActive returns the active membership of a user in a company
func (r *MembershipRepository) GetActive(ctx context.Context, userID, companyID string) (*model.CompanyMembership, error) {
	if !isUUID(userID) || !isUUID(companyID) {
		return nil, nil
	}
	var m model.CompanyMembership
	err := r.db.Gorm(ctx).
		Where("user_id = ? AND company_id = ? AND is_active = ?", userID, companyID, true).
		Take(&m).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
