package middleware

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/fuzball1989/job-posting-portal/internal/model"
)

// IdentityResolver turns a bearer token into the caller's identity. It
// fails for invalid tokens and for subjects that are missing or inactive.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, token string) (model.Identity, error)
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, bool) {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// Auth returns a middleware that requires a valid bearer token
func Auth(resolver IdentityResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				model.NewUnauthorizedError("missing authorization header").WriteJSON(w)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				model.NewUnauthorizedError("invalid authorization header format").WriteJSON(w)
				return
			}

			identity, err := resolver.ResolveIdentity(r.Context(), token)
			if err != nil {
				model.NewUnauthorizedError("invalid or expired token").
					WithCode(model.ErrCodeTokenInvalid).
					WriteJSON(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// OptionalAuth is like Auth but doesn't require authentication.
// A missing or unusable token continues anonymously.
func OptionalAuth(resolver IdentityResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := resolver.ResolveIdentity(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireRole rejects callers whose role is not listed. It must run after
// Auth.
func RequireRole(roles ...model.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentity(r.Context())
			if !ok {
				model.NewUnauthorizedError("authentication required").WriteJSON(w)
				return
			}
			if !slices.Contains(roles, identity.Role) {
				model.NewForbiddenError("insufficient role").
					WithCode(model.ErrCodeRoleRequired).
					WriteJSON(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithIdentity attaches identity to ctx
func WithIdentity(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

// GetIdentity extracts the caller identity from context
func GetIdentity(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(model.Identity)
	if !ok || identity.IsZero() {
		return model.Identity{}, false
	}
	return identity, true
}

// GetUserID extracts the user ID from context
func GetUserID(ctx context.Context) string {
	identity, _ := GetIdentity(ctx)
	return identity.ID
}
