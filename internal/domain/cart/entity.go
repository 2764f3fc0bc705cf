// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/your-org/store-backend/internal/domain/product"
)

// CartStatus is the lifecycle state of a cart. A cart is active until it is
// settled; purchased is terminal.
type CartStatus string

const (
	CartStatusActive    CartStatus = "active"
	CartStatusPurchased CartStatus = "purchased"
)

// ItemStatus is the lifecycle state of a line item. Active and removed
// alternate freely; purchased is terminal and only settlement sets it.
type ItemStatus string

const (
	ItemStatusActive    ItemStatus = "active"
	ItemStatusRemoved   ItemStatus = "removed"
	ItemStatusPurchased ItemStatus = "purchased"
)

// Cart represents a user's in-progress shopping cart. A user has at most one
// active cart; settlement flips it to purchased and the next add creates a
// fresh one.
type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	Status    CartStatus `gorm:"not null;default:'active';size:20" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relationships
	Items []CartItem `gorm:"foreignKey:CartID" json:"items"`
}

// CartItem is one product's presence in a cart. At most one row exists per
// (cart, product); re-adding a removed product reactivates its row.
type CartItem struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	CartID    uint       `gorm:"not null;index:idx_cart_product,unique" json:"cart_id"`
	ProductID uint       `gorm:"not null;index:idx_cart_product,unique" json:"product_id"`
	Quantity  int        `gorm:"not null;default:0" json:"quantity"`
	Status    ItemStatus `gorm:"not null;default:'active';size:20" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relationships
	Product product.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName overrides
func (Cart) TableName() string     { return "carts" }
func (CartItem) TableName() string { return "cart_items" }

// LineTotal returns price times quantity for the item, in cents
func (i *CartItem) LineTotal() int64 {
	return i.Product.Price * int64(i.Quantity)
}
