// internal/domain/order/entity.go
package order

import (
	"time"
)

// Order is the immutable record of a purchased cart. Rows are created once
// during cart settlement and never updated.
type Order struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	CartID     uint      `gorm:"not null;uniqueIndex" json:"cart_id"` // One order per cart, ever
	TotalPrice int64     `gorm:"not null" json:"total_price"`         // In cents
	CreatedAt  time.Time `json:"created_at"`
}

// TableName overrides the table name
func (Order) TableName() string {
	return "orders"
}

// GetFormattedTotal returns the total in major currency units
func (o *Order) GetFormattedTotal() float64 {
	return float64(o.TotalPrice) / 100
}
