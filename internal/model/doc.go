// Package model defines the domain entities and wire types of the job board.
//
// Entities double as gorm models: User, UserProfile, Company,
// CompanyMembership, JobCategory, Job and JobApplication. Hydrated relations
// (a job's company, category and poster) are plain pointer fields populated by
// the repository on reads.
//
// # Enumerations
//
// Closed sets such as JobStatus and RemoteType are uint8 types. They are
// rendered lower-case in JSON and stored upper-case in the database:
//
//	JobActive  // JSON "active", column 'ACTIVE'
//
// The zero value of every enum means "unset" and is stored as NULL.
//
// # Requests
//
// Request types (CreateJobRequest, RegisterRequest, ...) carry a Validate
// method returning []FieldError. Handlers turn a non-empty result into a
// 400 Problem Details response.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string    `json:"type"`
//	    Title   string    `json:"title"`
//	    Status  int       `json:"status"`
//	    Detail  string    `json:"detail"`
//	}
package model
