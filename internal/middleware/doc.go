// Package middleware provides HTTP middleware for the jobs API.
//
// Middlewares are plain func(http.Handler) http.Handler values composed
// with Chain. The server stack is
//
//	RequestID -> Logger -> Recovery -> CORS -> RateLimit -> Compress -> mux
//
// and individual routes add Auth, OptionalAuth or RequireRole.
//
// # Context Values
//
//   - GetIdentity(ctx): the authenticated caller, if any
//   - GetUserID(ctx): the caller's user id or ""
//   - GetRequestID(ctx): unique request identifier
package middleware
