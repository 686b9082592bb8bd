// Package handler provides HTTP request handlers for the jobs API.
//
// Each handler struct wraps one service and registers its own routes on a
// *http.ServeMux; NewRouter assembles them behind the global middleware
// stack.
//
// # Response Format
//
//   - WriteData: {"data": ...}
//   - WriteCollection: {"data": [...], "pagination": {...}}
//   - WriteError: RFC 9457 Problem Details (application/problem+json)
//
// Service errors go through MapServiceError, the single place where
// sentinels become HTTP statuses.
package handler
