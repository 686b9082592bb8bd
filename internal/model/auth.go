package model

import (
	"net/mail"
	"strings"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 72 // bcrypt input limit
	MaxNameLength     = 100
	MaxPhoneLength    = 20
)

// RegisterRequest creates an account. Admins cannot self-register.
type RegisterRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     *string `json:"phone,omitempty"`
	Role      string  `json:"role,omitempty"`
}

// Validate checks the registration payload
func (r *RegisterRequest) Validate() []FieldError {
	var errors []FieldError

	if err := validateEmail(r.Email); err != nil {
		errors = append(errors, *err)
	}
	if len(r.Password) < MinPasswordLength {
		errors = append(errors, FieldError{Field: "password", Message: "password must be at least 8 characters"})
	} else if len(r.Password) > MaxPasswordLength {
		errors = append(errors, FieldError{Field: "password", Message: "password must be 72 bytes or less"})
	}
	if strings.TrimSpace(r.FirstName) == "" {
		errors = append(errors, FieldError{Field: "firstName", Message: "firstName is required"})
	} else if len(r.FirstName) > MaxNameLength {
		errors = append(errors, FieldError{Field: "firstName", Message: "firstName must be 100 characters or less"})
	}
	if strings.TrimSpace(r.LastName) == "" {
		errors = append(errors, FieldError{Field: "lastName", Message: "lastName is required"})
	} else if len(r.LastName) > MaxNameLength {
		errors = append(errors, FieldError{Field: "lastName", Message: "lastName must be 100 characters or less"})
	}
	if r.Phone != nil && len(*r.Phone) > MaxPhoneLength {
		errors = append(errors, FieldError{Field: "phone", Message: "phone must be 20 characters or less"})
	}
	if r.Role != "" {
		role, err := ParseRole(r.Role)
		if err != nil || role == RoleAdmin {
			errors = append(errors, FieldError{Field: "role", Message: "role must be job_seeker or employer"})
		}
	}

	return errors
}

// AccountRole returns the requested role, defaulting to job seeker.
func (r *RegisterRequest) AccountRole() Role {
	if r.Role == "" {
		return RoleJobSeeker
	}
	role, err := ParseRole(r.Role)
	if err != nil {
		return RoleJobSeeker
	}
	return role
}

// NormalizedEmail returns the email trimmed and lower-cased.
func (r *RegisterRequest) NormalizedEmail() string {
	return NormalizeEmail(r.Email)
}

// LoginRequest authenticates with email and password
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the login payload
func (r *LoginRequest) Validate() []FieldError {
	var errors []FieldError
	if strings.TrimSpace(r.Email) == "" {
		errors = append(errors, FieldError{Field: "email", Message: "email is required"})
	}
	if r.Password == "" {
		errors = append(errors, FieldError{Field: "password", Message: "password is required"})
	}
	return errors
}

// RefreshRequest exchanges a refresh token for a new pair
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Validate checks the refresh payload
func (r *RefreshRequest) Validate() []FieldError {
	if strings.TrimSpace(r.RefreshToken) == "" {
		return []FieldError{{Field: "refreshToken", Message: "refreshToken is required"}}
	}
	return nil
}

// TokenPair is returned on login, registration and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// AuthResponse is the body of register and login responses.
type AuthResponse struct {
	User   *User     `json:"user"`
	Tokens TokenPair `json:"tokens"`
}

// MeResponse is the current user along with their company memberships.
type MeResponse struct {
	User        *User                `json:"user"`
	Memberships []*CompanyMembership `json:"memberships"`
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) *FieldError {
	email = strings.TrimSpace(email)
	if email == "" {
		return &FieldError{Field: "email", Message: "email is required"}
	}
	if len(email) > 254 {
		return &FieldError{Field: "email", Message: "email must be 254 characters or less"}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return &FieldError{Field: "email", Message: "email must be a valid address"}
	}
	return nil
}
