// internal/testutil/testutil.go
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/your-org/store-backend/internal/config"
	"github.com/your-org/store-backend/internal/domain/cart"
	"github.com/your-org/store-backend/internal/domain/order"
	"github.com/your-org/store-backend/internal/domain/product"
	"github.com/your-org/store-backend/internal/domain/user"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbCounter int64

// NewDB opens a fresh in-memory database with the full schema migrated.
// Each call gets its own named database so parallel tests never share state.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared",
		atomic.AddInt64(&dbCounter, 1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying database: %v", err)
	}
	// A shared-cache in-memory database vanishes when its last connection
	// closes; a single connection keeps it alive for the test's lifetime.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(
		&user.User{},
		&product.Category{},
		&product.Product{},
		&cart.Cart{},
		&cart.CartItem{},
		&order.Order{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	return db
}

// NewConfig returns a configuration suitable for tests.
func NewConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "store-backend",
			Version:     "test",
			Environment: "test",
		},
		JWT: config.JWTConfig{
			Secret:      "test-secret-key-that-is-long-enough!",
			TokenExpiry: time.Hour,
		},
		Security: config.SecurityConfig{
			BcryptCost: 4,
		},
	}
}

// CreateUser inserts a user directly, bypassing registration.
func CreateUser(t *testing.T, db *gorm.DB, username, email string) *user.User {
	t.Helper()

	u := &user.User{
		Username: username,
		Email:    email,
		Password: "not-a-real-hash",
		Role:     user.RoleCustomer,
		Status:   user.StatusActive,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateCategory inserts an active category.
func CreateCategory(t *testing.T, db *gorm.DB, name string) *product.Category {
	t.Helper()

	c := &product.Category{Name: name, Status: product.StatusActive}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return c
}

// CreateProduct inserts an active product owned by sellerID.
func CreateProduct(t *testing.T, db *gorm.DB, sellerID, categoryID uint, title string, price int64, quantity int) *product.Product {
	t.Helper()

	p := &product.Product{
		Title:      title,
		Price:      price,
		Quantity:   quantity,
		UserID:     sellerID,
		CategoryID: categoryID,
		Status:     product.StatusActive,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}
	return p
}
