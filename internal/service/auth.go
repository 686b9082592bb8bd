package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fuzball1989/job-posting-portal/internal/database"
	"github.com/fuzball1989/job-posting-portal/internal/model"
)

// bcrypt cost factor (10-14 recommended for production)
const defaultBcryptCost = 12

// UserRepository defines the interface for user storage.
// Lookups return (nil, nil) when the user does not exist.
type UserRepository interface {
	// Create inserts the user and, when non-nil, its profile atomically.
	// A taken email fails with database.ErrDuplicate.
	Create(ctx context.Context, user *model.User, profile *model.UserProfile) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

// MembershipRepository defines the interface for company membership storage
type MembershipRepository interface {
	// ListActiveByUser returns active memberships with their company,
	// oldest first.
	ListActiveByUser(ctx context.Context, userID string) ([]*model.CompanyMembership, error)
	// GetActive returns the active membership of userID in companyID.
	GetActive(ctx context.Context, userID, companyID string) (*model.CompanyMembership, error)
}

// AuthService handles authentication operations
type AuthService struct {
	userRepo       UserRepository
	membershipRepo MembershipRepository
	tokenService   *TokenService
	bcryptCost     int
	now            func() time.Time
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	UserRepo       UserRepository
	MembershipRepo MembershipRepository
	TokenService   *TokenService
	BcryptCost     int // Default: 12
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = defaultBcryptCost
	}
	return &AuthService{
		userRepo:       cfg.UserRepo,
		membershipRepo: cfg.MembershipRepo,
		tokenService:   cfg.TokenService,
		bcryptCost:     cfg.BcryptCost,
		now:            time.Now,
	}
}

// Register creates an account and signs the user in. Job seekers get an
// empty profile row alongside the user.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	role := req.AccountRole()
	if role == model.RoleAdmin {
		return nil, ErrAdminRegistration
	}

	email := req.NormalizedEmail()
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := hashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Phone:        req.Phone,
		Role:         role,
		IsActive:     true,
	}

	var profile *model.UserProfile
	if role == model.RoleJobSeeker {
		profile = &model.UserProfile{ID: uuid.NewString(), UserID: user.ID}
	}

	if err := s.userRepo.Create(ctx, user, profile); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}
	user.Profile = profile

	tokens, err := s.tokenService.Issue(ctx, user.Identity())
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{User: user, Tokens: *tokens}, nil
}

// Login authenticates a user with email/password
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, model.NormalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || !checkPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	now := s.now().UTC()
	if err := s.userRepo.TouchLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now

	tokens, err := s.tokenService.Issue(ctx, user.Identity())
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{User: user, Tokens: *tokens}, nil
}

// Refresh rotates a refresh token. The owner must still exist and be active;
// otherwise the token is rejected like any other invalid refresh token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error) {
	userID, err := s.tokenService.Consume(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrInvalidRefreshToken
	}

	return s.tokenService.Issue(ctx, user.Identity())
}

// Logout revokes every refresh session of the user
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.tokenService.RevokeAll(ctx, userID)
}

// Me returns the user along with their active company memberships
func (s *AuthService) Me(ctx context.Context, userID string) (*model.MeResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	memberships, err := s.membershipRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if memberships == nil {
		memberships = []*model.CompanyMembership{}
	}
	return &model.MeResponse{User: user, Memberships: memberships}, nil
}

// ResolveIdentity verifies an access token and re-reads its subject. Unknown
// and deactivated users fail with ErrInvalidToken.
func (s *AuthService) ResolveIdentity(ctx context.Context, token string) (model.Identity, error) {
	claims, err := s.tokenService.VerifyAccess(token)
	if err != nil {
		return model.Identity{}, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		return model.Identity{}, err
	}
	if user == nil || !user.IsActive {
		return model.Identity{}, ErrInvalidToken
	}
	return user.Identity(), nil
}

// hashPassword hashes a password with bcrypt at the given cost.
func hashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func checkPassword(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
