// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/your-org/store-backend/internal/config"
	"github.com/your-org/store-backend/internal/domain/order"
	"github.com/your-org/store-backend/internal/domain/product"
	"github.com/your-org/store-backend/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// Service owns the cart lifecycle: line-item state transitions and the
// settlement of a cart into stock decrements and an order record.
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new cart service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// AddItemRequest represents add-to-cart data
type AddItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// UpdateItemRequest represents a line-item quantity change. NewQty is a
// pointer so that an explicit zero binds; zero removes the item.
type UpdateItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	NewQty    *int `json:"newQty" binding:"required,min=0"`
}

// GetActiveCart retrieves the user's active cart with its active line items,
// each joined with its product.
func (s *Service) GetActiveCart(ctx context.Context, userID uint) (*Cart, error) {
	var c Cart
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, CartStatusActive).
		Preload("Items", "status = ?", ItemStatusActive).
		Preload("Items.Product").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.E(apperrors.KindNotFound, "this user does not have a cart yet")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}

	return &c, nil
}

// AddItem puts a product into the user's active cart, creating the cart if
// none exists. The stock check here is advisory: nothing is reserved until
// settlement.
func (s *Service) AddItem(ctx context.Context, userID uint, req *AddItemRequest) (*CartItem, error) {
	db := s.db.WithContext(ctx)

	var prod product.Product
	err := db.Where("id = ? AND status = ?", req.ProductID, product.StatusActive).
		First(&prod).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.E(apperrors.KindNotFound, "product does not exist with given id")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}

	if !prod.HasStock(req.Quantity) {
		return nil, apperrors.Errorf(apperrors.KindInsufficientStock,
			"this product only has %d items", prod.Quantity)
	}

	c, err := s.findOrCreateActiveCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	var item CartItem
	err = db.Where("cart_id = ? AND product_id = ?", c.ID, req.ProductID).
		First(&item).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = CartItem{
			CartID:    c.ID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			Status:    ItemStatusActive,
		}
		if err := db.Create(&item).Error; err != nil {
			return nil, fmt.Errorf("failed to add product to cart: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to retrieve cart item: %w", err)
	case item.Status == ItemStatusActive:
		return nil, apperrors.E(apperrors.KindDuplicateLineItem, "this product is already in the cart")
	default:
		// Previously removed; reactivate with the requested quantity
		updates := map[string]interface{}{
			"status":   ItemStatusActive,
			"quantity": req.Quantity,
		}
		if err := db.Model(&item).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to reactivate cart item: %w", err)
		}
	}

	return &item, nil
}

// UpdateItem changes a line item's quantity within the user's active cart.
// A new quantity of zero removes the item.
func (s *Service) UpdateItem(ctx context.Context, userID uint, req *UpdateItemRequest) (*CartItem, error) {
	db := s.db.WithContext(ctx)

	c, err := s.GetActiveCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	var prod product.Product
	err = db.Where("id = ? AND status = ?", req.ProductID, product.StatusActive).
		First(&prod).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.E(apperrors.KindNotFound, "product does not exist with given id")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}

	newQty := *req.NewQty
	if !prod.HasStock(newQty) {
		return nil, apperrors.Errorf(apperrors.KindInsufficientStock,
			"this product only has %d items", prod.Quantity)
	}

	var item CartItem
	err = db.Where("cart_id = ? AND product_id = ?", c.ID, req.ProductID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.E(apperrors.KindNotFound, "can't update product, is not in the cart yet")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart item: %w", err)
	}

	status := ItemStatusActive
	if newQty == 0 {
		status = ItemStatusRemoved
	}

	updates := map[string]interface{}{
		"status":   status,
		"quantity": newQty,
	}
	if err := db.Model(&item).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	return &item, nil
}

// RemoveItem marks a line item removed within the user's active cart. The
// product reference stays on the row so history survives removal.
func (s *Service) RemoveItem(ctx context.Context, userID, productID uint) error {
	db := s.db.WithContext(ctx)

	c, err := s.GetActiveCart(ctx, userID)
	if err != nil {
		return err
	}

	var item CartItem
	err = db.Where("cart_id = ? AND product_id = ? AND status = ?",
		c.ID, productID, ItemStatusActive).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.E(apperrors.KindNotFound, "this product does not exist in the cart")
	}
	if err != nil {
		return fmt.Errorf("failed to retrieve cart item: %w", err)
	}

	updates := map[string]interface{}{
		"status":   ItemStatusRemoved,
		"quantity": 0,
	}
	if err := db.Model(&item).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}

	return nil
}

// Purchase settles the user's active cart: every active line item is marked
// purchased, stock is decremented, the cart flips to purchased and one order
// is written. The whole settlement runs in a single transaction; any line
// failing its stock check aborts all of it.
func (s *Service) Purchase(ctx context.Context, userID uint) (*order.Order, error) {
	c, err := s.GetActiveCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(c.Items) == 0 {
		return nil, apperrors.E(apperrors.KindValidation, "cart is empty")
	}

	var placed order.Order
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Win the cart first: at most one settlement flips it, a concurrent
		// purchase of the same cart loses here and settles nothing.
		flip := tx.Model(&Cart{}).
			Where("id = ? AND status = ?", c.ID, CartStatusActive).
			Update("status", CartStatusPurchased)
		if flip.Error != nil {
			return fmt.Errorf("failed to settle cart: %w", flip.Error)
		}
		if flip.RowsAffected == 0 {
			return apperrors.E(apperrors.KindNotFound, "this user does not have a cart yet")
		}

		// Settle from the transaction's own view of the line items, not the
		// snapshot loaded above; a remove that landed in between stays out.
		var items []CartItem
		err := tx.Where("cart_id = ? AND status = ?", c.ID, ItemStatusActive).
			Preload("Product").
			Find(&items).Error
		if err != nil {
			return fmt.Errorf("failed to load cart items: %w", err)
		}
		if len(items) == 0 {
			return apperrors.E(apperrors.KindValidation, "cart is empty")
		}

		var totalPrice int64
		for i := range items {
			item := &items[i]

			// Authoritative stock check: the conditional decrement only
			// succeeds while quantity covers the line.
			ok, err := product.DecrementStock(tx, item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return insufficientStock(tx, item.ProductID)
			}

			res := tx.Model(&CartItem{}).
				Where("id = ? AND status = ?", item.ID, ItemStatusActive).
				Update("status", ItemStatusPurchased)
			if res.Error != nil {
				return fmt.Errorf("failed to settle cart item: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				// The line changed under settlement; never charge for it.
				return apperrors.E(apperrors.KindConflict,
					"cart changed during purchase, try again")
			}

			totalPrice += item.LineTotal()
		}

		placed = order.Order{
			UserID:     userID,
			CartID:     c.ID,
			TotalPrice: totalPrice,
		}
		if err := tx.Create(&placed).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &placed, nil
}

// insufficientStock builds the stock error from the product's quantity as the
// transaction sees it, so the reported count is current at settlement time.
func insufficientStock(tx *gorm.DB, productID uint) error {
	var quantity int
	err := tx.Model(&product.Product{}).
		Select("quantity").
		Where("id = ?", productID).
		Scan(&quantity).Error
	if err != nil {
		return fmt.Errorf("failed to read product stock: %w", err)
	}

	return apperrors.Errorf(apperrors.KindInsufficientStock,
		"this product only has %d items", quantity)
}

func (s *Service) findOrCreateActiveCart(ctx context.Context, userID uint) (*Cart, error) {
	var c Cart
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, CartStatusActive).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = Cart{UserID: userID, Status: CartStatusActive}
		if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
			return nil, fmt.Errorf("failed to create cart: %w", err)
		}
		return &c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}

	return &c, nil
}
