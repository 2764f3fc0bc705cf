// internal/domain/product/entity.go
package product

import (
	"time"
)

// Status is the lifecycle state of a product or category
type Status string

const (
	StatusActive  Status = "active"
	StatusRemoved Status = "removed"
)

// Product represents a product listed by a seller
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null;size:255" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int64     `gorm:"not null" json:"price"` // Price in cents
	Quantity    int       `gorm:"not null;default:0" json:"quantity"`
	UserID      uint      `gorm:"not null;index" json:"user_id"` // Seller
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`
	Status      Status    `gorm:"not null;default:'active';size:20" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Seller   Seller   `gorm:"foreignKey:UserID" json:"seller,omitempty"`
}

// Category represents a product category
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Status    Status    `gorm:"not null;default:'active';size:20" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Seller is a read-only projection of the users table, enough to attach
// seller information to product listings without owning the user model.
type Seller struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// TableName overrides
func (Product) TableName() string  { return "products" }
func (Category) TableName() string { return "categories" }
func (Seller) TableName() string   { return "users" }

// IsActive reports whether the product is available for sale
func (p *Product) IsActive() bool {
	return p.Status == StatusActive
}

// HasStock reports whether the requested quantity is covered by current stock
func (p *Product) HasStock(quantity int) bool {
	return quantity <= p.Quantity
}

// GetFormattedPrice returns the price in major currency units
func (p *Product) GetFormattedPrice() float64 {
	return float64(p.Price) / 100
}
