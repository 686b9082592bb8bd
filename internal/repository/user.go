package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/fuzball1989/job-posting-portal/internal/database"
	"github.com/fuzball1989/job-posting-portal/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user and, when given, its profile in one transaction
func (r *UserRepository) Create(ctx context.Context, user *model.User, profile *model.UserProfile) error {
	err := r.db.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Omit("Profile").Create(user).Error; err != nil {
			return err
		}
		if profile != nil {
			profile.UserID = user.ID
			if err := tx.Create(profile).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return database.Translate(err)
}

// GetByID retrieves a user by ID, with profile
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	if !isUUID(id) {
		return nil, nil
	}
	var user model.User
	err := r.db.Gorm(ctx).Preload("Profile").Where("id = ?", id).Take(&user).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by normalized email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.Gorm(ctx).Where("email = ?", email).Take(&user).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// TouchLastLogin stamps the last login time
func (r *UserRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	res := r.db.Gorm(ctx).Model(&model.User{}).Where("id = ?", id).Update("last_login_at", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// SetActive enables or disables an account
func (r *UserRepository) SetActive(ctx context.Context, id string, active bool) error {
	res := r.db.Gorm(ctx).Model(&model.User{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}
