// Package service implements the business logic layer for the job board API.
//
// The service package contains all domain logic, validation rules, and
// orchestration of repository operations. Services are the primary
// abstraction between HTTP handlers and data access.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Methods implement business operations with proper validation
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from specific database implementations
//   - Clear contracts for data access requirements
//
// # Error Handling
//
// Services return domain-specific errors defined as package-level variables:
//
//	var (
//	    ErrJobNotFound = errors.New("job not found")
//	    ErrNotJobOwner = errors.New("not authorized to modify this job")
//	)
//
// # Example Usage
//
//	policy := NewPolicy(PolicyConfig{
//	    UserRepo:       userRepository,
//	    MembershipRepo: membershipRepository,
//	    JobRepo:        jobRepository,
//	})
//	jobs := NewJobService(JobServiceConfig{
//	    JobRepo:      jobRepository,
//	    CategoryRepo: categoryRepository,
//	    Policy:       policy,
//	})
//	job, err := jobs.CreateJob(ctx, userID, model.CreateJobRequest{
//	    Title:          "Senior Go Engineer",
//	    Description:    "...",
//	    EmploymentType: "full_time",
//	})
package service
