// internal/domain/product/category_service.go
package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/your-org/store-backend/internal/config"
	"github.com/your-org/store-backend/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// CategoryService handles category business logic
type CategoryService struct {
	db     *gorm.DB
	config *config.Config
}

// NewCategoryService creates a new category service
func NewCategoryService(db *gorm.DB, cfg *config.Config) *CategoryService {
	return &CategoryService{
		db:     db,
		config: cfg,
	}
}

// CreateCategoryRequest represents category creation data
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateCategoryRequest represents a category rename
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// List retrieves all active categories
func (s *CategoryService) List(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := s.db.WithContext(ctx).
		Where("status = ?", StatusActive).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}

	return categories, nil
}

// Create adds a new active category
func (s *CategoryService) Create(ctx context.Context, req *CreateCategoryRequest) (*Category, error) {
	category := Category{
		Name:   req.Name,
		Status: StatusActive,
	}

	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &category, nil
}

// Update renames an active category
func (s *CategoryService) Update(ctx context.Context, id uint, req *UpdateCategoryRequest) (*Category, error) {
	var category Category
	err := s.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, StatusActive).
		First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.E(apperrors.KindNotFound, "category does not exist with given id")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve category: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&category).Update("name", req.Name).Error; err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &category, nil
}
