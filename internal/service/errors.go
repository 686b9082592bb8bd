package service

import (
	"errors"
	"fmt"

	"github.com/fuzball1989/job-posting-portal/internal/model"
)

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrAdminRegistration  = errors.New("admin accounts cannot be self-registered")
)

// ===== Token Errors =====
var (
	ErrInvalidToken        = errors.New("invalid token")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenReused  = errors.New("refresh token already used")
)

// ===== Authorization Errors =====
var (
	ErrOnlyEmployers       = errors.New("only employers can post jobs")
	ErrNoCompanyMembership = errors.New("must be associated with a company")
	ErrNotJobOwner         = errors.New("not authorized to modify this job")
)

// ===== Job Errors =====
var (
	ErrJobNotFound             = errors.New("job not found")
	ErrCategoryNotFound        = errors.New("category not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrSlugConflict            = errors.New("could not allocate a unique slug")
)

// ValidationError reports business-rule failures discovered after request
// decoding, such as an inverted salary range once an update is merged.
type ValidationError struct {
	Errors []model.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
}

// NewValidationError wraps field errors.
func NewValidationError(errs []model.FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
