// Package helpers provides test utility functions for the job board API.
//
// # JWT Helpers
//
// Mint tokens signed with the test secret:
//
//	jh := helpers.NewJWTHelper(t)
//	token := jh.AccessToken(user)
//
// # HTTP Request Helpers
//
//	req := helpers.NewRequest(t, http.MethodPost, "/v1/jobs").
//	    WithBody(body).
//	    WithToken(token).
//	    Build()
//
// # Assertion Helpers
//
//	helpers.AssertStatus(t, rec, http.StatusCreated)
//	helpers.AssertProblemDetails(t, rec, http.StatusForbidden, model.ErrCodeNotJobOwner)
//	helpers.AssertValidationError(t, rec, "title")
//
// # Pointer Helpers
//
//	min := helpers.Int64Ptr(50000)
//	loc := helpers.StringPtr("Berlin")
package helpers
