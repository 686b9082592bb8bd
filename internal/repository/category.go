package repository

import (
	"context"

	"github.com/fuzball1989/job-posting-portal/internal/database"
	"github.com/fuzball1989/job-posting-portal/internal/model"
)

// CategoryRepository handles job category data access
type CategoryRepository struct {
	db *database.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *database.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserts a category
func (r *CategoryRepository) Create(ctx context.Context, c *model.JobCategory) error {
	return database.Translate(r.db.Gorm(ctx).Create(c).Error)
}

// GetBySlug retrieves a category by slug
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*model.JobCategory, error) {
	var c model.JobCategory
	err := r.db.Gorm(ctx).Where("slug = ?", slug).Take(&c).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Exists reports whether an active category has the given id
func (r *CategoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	if !isUUID(id) {
		return false, nil
	}
	var n int64
	err := r.db.Gorm(ctx).Model(&model.JobCategory{}).
		Where("id = ? AND is_active = ?", id, true).
		Count(&n).Error
	return n > 0, err
}

// ListActiveWithCounts returns active categories by name, each with the
// number of active jobs filed under it
func (r *CategoryRepository) ListActiveWithCounts(ctx context.Context) ([]*model.CategoryWithCount, error) {
	var out []*model.CategoryWithCount
	err := r.db.Gorm(ctx).
		Table("job_categories AS c").
		Select("c.*, COUNT(j.id) AS job_count").
		Joins("LEFT JOIN jobs j ON j.category_id = c.id AND j.status = ?", model.JobActive).
		Where("c.is_active = ?", true).
		Group("c.id").
		Order("c.name").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
