// Package jwt issues and verifies the HS256 tokens used by the API.
//
// Two token kinds share one secret but differ in audience:
//
//   - access:  sub, email, role; aud "<issuer>/access"; default 7 days
//   - refresh: sub, jti;         aud "<issuer>/refresh"; default 30 days
//
// Verification fails with ErrInvalidToken on a bad signature, an algorithm
// other than HS256, expiry, a foreign issuer or the wrong audience. Expiry
// additionally matches ErrTokenExpired.
//
//	svc, err := jwt.NewService(jwt.Config{Secret: secret, Issuer: "job-board"})
//	token, err := svc.SignAccess(user.ID, user.Email, "employer")
//	claims, err := svc.ValidateAccess(token)
package jwt
