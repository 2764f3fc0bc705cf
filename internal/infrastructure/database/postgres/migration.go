// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/store-backend/internal/domain/cart"
	"github.com/your-org/store-backend/internal/domain/order"
	"github.com/your-org/store-backend/internal/domain/product"
	"github.com/your-org/store-backend/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	logrus.Info("running database auto-migrations")

	// Dependency order: users and categories before products, products
	// before carts, carts before orders.
	models := []interface{}{
		&user.User{},
		&product.Category{},
		&product.Product{},
		&cart.Cart{},
		&cart.CartItem{},
		&order.Order{},
	}

	for _, model := range models {
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	logrus.Info("database auto-migrations completed")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_email_status ON users(email, status)",
		"CREATE INDEX IF NOT EXISTS idx_products_status ON products(status)",
		"CREATE INDEX IF NOT EXISTS idx_products_category_status ON products(category_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_products_seller_status ON products(user_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_carts_user_status ON carts(user_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_cart_items_status ON cart_items(cart_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_orders_user_created ON orders(user_id, created_at DESC)",
	}

	for _, index := range indexes {
		if err := m.db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// SeedInitialData seeds a development admin account and a starter category
func (m *Migration) SeedInitialData() error {
	var admin user.User
	err := m.db.Where("role = ?", user.RoleAdmin).First(&admin).Error
	if err == nil {
		return nil // Already seeded
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check admin account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("Admin1234!"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	admin = user.User{
		Username: "admin",
		Email:    "admin@example.com",
		Password: string(hash),
		Role:     user.RoleAdmin,
		Status:   user.StatusActive,
	}
	if err := m.db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	category := product.Category{Name: "General", Status: product.StatusActive}
	if err := m.db.Create(&category).Error; err != nil {
		return fmt.Errorf("failed to seed category: %w", err)
	}

	logrus.Info("seeded development admin account and starter category")
	return nil
}
