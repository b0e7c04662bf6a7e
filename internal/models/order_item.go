package models

import (
	"time"

	"github.com/kirana-store/kirana/internal/units"
)

// OrderItem snapshots one cart line at checkout. Product fields are
// copied so later catalog edits cannot rewrite order history; Quantity is
// the base amount the line held.
type OrderItem struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	OrderID      uint       `gorm:"not null;index" json:"order_id"`
	ProductID    uint       `gorm:"not null;index" json:"product_id"`
	ProductName  string     `gorm:"not null" json:"product_name"`
	UnitPrice    Money      `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`
	PackQuantity float64    `gorm:"default:0" json:"pack_quantity,omitempty"`
	Unit         units.Unit `gorm:"type:varchar(16)" json:"unit,omitempty"`
	Quantity     int64      `gorm:"not null" json:"quantity"`
	QuantityText string     `gorm:"type:varchar(64)" json:"quantity_text"`
	LineTotal    Money      `gorm:"type:decimal(20,2);not null;default:0" json:"line_total"`
	CreatedAt    time.Time  `json:"created_at"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
