// internal/domain/product/service.go
package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/your-org/store-backend/internal/config"
	"github.com/your-org/store-backend/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// Service handles product business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new product service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// CreateProductRequest represents product creation data
type CreateProductRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       *int64 `json:"price" binding:"required,min=0"` // In cents
	Quantity    int    `json:"quantity" binding:"required,min=1"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Price       *int64  `json:"price" binding:"omitempty,min=0"`
	Quantity    *int    `json:"quantity" binding:"omitempty,min=1"`
}

// List retrieves all active products with category and seller details
func (s *Service) List(ctx context.Context) ([]Product, error) {
	var products []Product
	err := s.db.WithContext(ctx).
		Where("status = ?", StatusActive).
		Preload("Category").
		Preload("Seller").
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	return products, nil
}

// Get retrieves a single active product by id
func (s *Service) Get(ctx context.Context, id uint) (*Product, error) {
	var prod Product
	err := s.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, StatusActive).
		Preload("Category").
		Preload("Seller").
		First(&prod).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.E(apperrors.KindNotFound, "product does not exist with given id")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}

	return &prod, nil
}

// Create lists a new product for the given seller
func (s *Service) Create(ctx context.Context, sellerID uint, req *CreateProductRequest) (*Product, error) {
	var category Category
	err := s.db.WithContext(ctx).
		Where("id = ? AND status = ?", req.CategoryID, StatusActive).
		First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.E(apperrors.KindNotFound, "category does not exist with given id")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve category: %w", err)
	}

	prod := Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		Quantity:    req.Quantity,
		UserID:      sellerID,
		CategoryID:  req.CategoryID,
		Status:      StatusActive,
	}

	if err := s.db.WithContext(ctx).Create(&prod).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &prod, nil
}

// Update applies a partial update to a product owned by the caller
func (s *Service) Update(ctx context.Context, callerID, id uint, req *UpdateProductRequest) (*Product, error) {
	prod, err := s.findOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}

	if len(updates) == 0 {
		return prod, nil
	}

	if err := s.db.WithContext(ctx).Model(prod).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return prod, nil
}

// Delete soft-removes a product owned by the caller
func (s *Service) Delete(ctx context.Context, callerID, id uint) error {
	prod, err := s.findOwned(ctx, callerID, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Model(prod).Update("status", StatusRemoved).Error; err != nil {
		return fmt.Errorf("failed to remove product: %w", err)
	}

	return nil
}

func (s *Service) findOwned(ctx context.Context, callerID, id uint) (*Product, error) {
	var prod Product
	err := s.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, StatusActive).
		First(&prod).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.E(apperrors.KindNotFound, "product does not exist with given id")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}

	if prod.UserID != callerID {
		return nil, apperrors.E(apperrors.KindForbidden, "you do not own this product")
	}

	return &prod, nil
}

// DecrementStock atomically takes the given amount off a product's stock
// within the caller's transaction. It reports false when current stock does
// not cover the amount; the row is left untouched in that case.
func DecrementStock(tx *gorm.DB, productID uint, amount int) (bool, error) {
	result := tx.Model(&Product{}).
		Where("id = ? AND quantity >= ?", productID, amount).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", amount))
	if result.Error != nil {
		return false, fmt.Errorf("failed to decrement stock: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
