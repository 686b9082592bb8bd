package model

import "time"

// Company represents an employer organization
type Company struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Slug        string    `gorm:"size:220;not null;uniqueIndex" json:"slug"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Location    *string   `gorm:"size:200" json:"location,omitempty"`
	Website     *string   `gorm:"size:500" json:"website,omitempty"`
	LogoURL     *string   `gorm:"size:500" json:"logoUrl,omitempty"`
	IsVerified  bool      `gorm:"not null" json:"isVerified"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CompanyMembership links a user to a company with a role.
// Memberships are ordered by JoinedAt (then ID) to preserve insertion order.
type CompanyMembership struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string         `gorm:"type:uuid;not null;index;uniqueIndex:idx_membership_user_company,priority:1" json:"userId"`
	CompanyID string         `gorm:"type:uuid;not null;index;uniqueIndex:idx_membership_user_company,priority:2" json:"companyId"`
	Role      MembershipRole `gorm:"type:varchar(16);not null" json:"role"`
	Title     *string        `gorm:"size:200" json:"title,omitempty"`
	IsActive  bool           `gorm:"not null" json:"isActive"`
	JoinedAt  time.Time      `gorm:"not null" json:"joinedAt"`

	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Company *Company `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"company,omitempty"`
}

// CanManageJobs reports whether this membership grants job posting rights.
func (m *CompanyMembership) CanManageJobs() bool {
	return m.IsActive && m.Role.CanManageJobs()
}
