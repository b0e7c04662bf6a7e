package models

import "time"

// CartItem is one persisted cart line. Quantity is a base amount (grams,
// milliliters or whole units depending on the product's unit kind), never
// a raw user entry. One row per (cart token, product). Rows are deleted
// for real: the unique index must stay free for re-added products.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CartToken string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_token_product" json:"cart_token"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_token_product" json:"product_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	Position  int       `gorm:"not null;default:0" json:"position"` // insertion order within the cart
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (CartItem) TableName() string {
	return "cart_items"
}
