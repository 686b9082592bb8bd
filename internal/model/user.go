package model

import "time"

// User represents an account
type User struct {
	ID              string     `gorm:"type:uuid;primaryKey" json:"id"`
	Email           string     `gorm:"size:254;not null;uniqueIndex" json:"email"`
	PasswordHash    string     `gorm:"not null" json:"-"` // Never expose password hash
	FirstName       string     `gorm:"size:100;not null" json:"firstName"`
	LastName        string     `gorm:"size:100;not null" json:"lastName"`
	Phone           *string    `gorm:"size:20" json:"phone,omitempty"`
	Role            Role       `gorm:"type:varchar(16);not null;index" json:"role"`
	IsActive        bool       `gorm:"not null" json:"isActive"`
	IsEmailVerified bool       `gorm:"not null" json:"isEmailVerified"`
	LastLoginAt     *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`

	Profile *UserProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

// IsEmployer returns true if the user has the employer role
func (u *User) IsEmployer() bool {
	return u.Role == RoleEmployer
}

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Identity returns the normalized caller identity for this user.
func (u *User) Identity() Identity {
	return Identity{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// UserProfile holds job seeker profile data. One per job seeker.
type UserProfile struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	Title     *string   `gorm:"size:200" json:"title,omitempty"`
	Summary   *string   `gorm:"type:text" json:"summary,omitempty"`
	Location  *string   `gorm:"size:200" json:"location,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Identity is the authenticated caller attached to a request. Role is
// rendered lower-case on the wire.
type Identity struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// IsZero reports whether the identity is anonymous.
func (i Identity) IsZero() bool {
	return i.ID == ""
}

// UserSummary is the public projection of a user shown on job postings.
// It maps onto the users table so it can be preloaded directly.
type UserSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// TableName points gorm at the users table.
func (UserSummary) TableName() string {
	return "users"
}
