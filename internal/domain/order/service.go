// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/your-org/store-backend/internal/config"
	"github.com/your-org/store-backend/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// Service handles the read side of the order ledger. Orders are written only
// by cart settlement.
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ForUser retrieves all orders placed by a user, newest first
func (s *Service) ForUser(ctx context.Context, userID uint) ([]Order, error) {
	var orders []Order
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}

	return orders, nil
}

// ForUserByID retrieves one of the user's orders by id
func (s *Service) ForUserByID(ctx context.Context, userID, orderID uint) (*Order, error) {
	var o Order
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.E(apperrors.KindNotFound, "there is no purchase with the provided id")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}

	return &o, nil
}
