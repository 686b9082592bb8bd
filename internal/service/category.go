package service

import (
	"context"

	"github.com/fuzball1989/job-posting-portal/internal/model"
)

// CategoryService lists job categories
type CategoryService struct {
	categoryRepo CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: repo}
}

// ListCategories returns active categories with their active job counts,
// ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context) ([]*model.CategoryWithCount, error) {
	categories, err := s.categoryRepo.ListActiveWithCounts(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []*model.CategoryWithCount{}
	}
	return categories, nil
}
