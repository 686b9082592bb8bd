package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidKey   = errors.New("invalid key")
)

const (
	DefaultAccessTTL  = 7 * 24 * time.Hour
	DefaultRefreshTTL = 30 * 24 * time.Hour

	accessAudienceSuffix  = "/access"
	refreshAudienceSuffix = "/refresh"
)

// AccessClaims are carried by access tokens.
type AccessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwtlib.RegisteredClaims
}

// RefreshClaims are carried by refresh tokens: only the subject and token id.
type RefreshClaims struct {
	jwtlib.RegisteredClaims
}

// TokenID returns the jti claim.
func (c *RefreshClaims) TokenID() string {
	return c.ID
}

// Config holds JWT service configuration
type Config struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Service signs and validates HS256 tokens. Access and refresh tokens carry
// different audiences so one can never be accepted as the other.
type Service struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewService creates a new JWT service
func NewService(cfg Config) (*Service, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("%w: secret is required", ErrInvalidKey)
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = DefaultAccessTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = DefaultRefreshTTL
	}
	return &Service{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        time.Now,
	}, nil
}

// WithClock returns a copy of the service that reads time from now.
func (s *Service) WithClock(now func() time.Time) *Service {
	clone := *s
	clone.now = now
	return &clone
}

// AccessTTL returns the lifetime of access tokens.
func (s *Service) AccessTTL() time.Duration { return s.accessTTL }

// RefreshTTL returns the lifetime of refresh tokens.
func (s *Service) RefreshTTL() time.Duration { return s.refreshTTL }

// Issuer returns the configured iss claim.
func (s *Service) Issuer() string { return s.issuer }

func (s *Service) accessAudience() string  { return s.issuer + accessAudienceSuffix }
func (s *Service) refreshAudience() string { return s.issuer + refreshAudienceSuffix }

// SignAccess creates a signed access token for subject.
func (s *Service) SignAccess(subject, email, role string) (string, error) {
	now := s.now()
	claims := AccessClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   subject,
			Audience:  jwtlib.ClaimStrings{s.accessAudience()},
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	return s.sign(claims)
}

// SignRefresh creates a signed refresh token and returns its expiry.
func (s *Service) SignRefresh(subject, tokenID string) (string, time.Time, error) {
	now := s.now()
	expires := now.Add(s.refreshTTL)
	claims := RefreshClaims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   subject,
			Audience:  jwtlib.ClaimStrings{s.refreshAudience()},
			ID:        tokenID,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(expires),
		},
	}
	token, err := s.sign(claims)
	return token, expires, err
}

func (s *Service) sign(claims jwtlib.Claims) (string, error) {
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign: %w", err)
	}
	return token, nil
}

// ValidateAccess verifies an access token and returns its claims.
func (s *Service) ValidateAccess(token string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := s.parse(token, claims, s.accessAudience()); err != nil {
		return nil, err
	}
	return claims, nil
}

// ValidateRefresh verifies a refresh token and returns its claims.
func (s *Service) ValidateRefresh(token string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := s.parse(token, claims, s.refreshAudience()); err != nil {
		return nil, err
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("%w: missing token id", ErrInvalidToken)
	}
	return claims, nil
}

func (s *Service) parse(token string, claims jwtlib.Claims, audience string) error {
	parser := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithIssuer(s.issuer),
		jwtlib.WithAudience(audience),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithIssuedAt(),
		jwtlib.WithTimeFunc(s.now),
	)

	_, err := parser.ParseWithClaims(token, claims, func(*jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrInvalidToken, ErrTokenExpired)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	sub, _ := claims.GetSubject()
	if sub == "" {
		return fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return nil
}
