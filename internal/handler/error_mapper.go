package handler

import (
	"errors"

	"github.com/fuzball1989/job-posting-portal/internal/database"
	"github.com/fuzball1989/job-posting-portal/internal/model"
	"github.com/fuzball1989/job-posting-portal/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This is the only place where service and storage errors become HTTP
// statuses.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	var validation *service.ValidationError
	if errors.As(err, &validation) {
		return model.NewValidationError(validation.Errors)
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error()).WithCode(model.ErrCodeLoginFailed)
	case errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrInvalidRefreshToken),
		errors.Is(err, service.ErrRefreshTokenReused):
		return model.NewUnauthorizedError("invalid or expired token").WithCode(model.ErrCodeTokenInvalid)

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrAccountDisabled):
		return model.NewForbiddenError(err.Error()).WithCode(model.ErrCodeAccountDisabled)
	case errors.Is(err, service.ErrOnlyEmployers):
		return model.NewForbiddenError(err.Error()).WithCode(model.ErrCodeEmployersOnly)
	case errors.Is(err, service.ErrNoCompanyMembership):
		return model.NewForbiddenError(err.Error()).WithCode(model.ErrCodeNotMember)
	case errors.Is(err, service.ErrNotJobOwner):
		return model.NewForbiddenError(err.Error()).WithCode(model.ErrCodeNotJobOwner)

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrJobNotFound):
		return model.NewNotFoundError("job")
	case errors.Is(err, database.ErrNotFound):
		return model.NewNotFoundError("resource")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return model.NewConflictError(err.Error()).WithCode(model.ErrCodeAlreadyExists)
	case errors.Is(err, service.ErrSlugConflict),
		errors.Is(err, database.ErrDuplicate):
		return model.NewConflictError(err.Error())

	// ===== Validation Errors → 400 =====
	case errors.Is(err, service.ErrAdminRegistration):
		return model.NewValidationError([]model.FieldError{{Field: "role", Message: err.Error()}})
	case errors.Is(err, service.ErrCategoryNotFound):
		return model.NewValidationError([]model.FieldError{{Field: "categoryId", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidStatusTransition):
		return model.NewValidationError([]model.FieldError{{Field: "status", Message: err.Error()}})

	// ===== Storage unavailable → 503 =====
	case errors.Is(err, database.ErrConnection):
		return model.NewServiceUnavailableError("storage is unavailable")

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
