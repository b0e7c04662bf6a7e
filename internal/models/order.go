package models

import (
	"time"

	"gorm.io/gorm"
)

// Order statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
)

// Delivery types.
const (
	DeliveryTypePickup   = "pickup"
	DeliveryTypeDelivery = "delivery"
)

// Payment methods.
const (
	PaymentMethodCard = "card"
	PaymentMethodUPI  = "upi"
	PaymentMethodCash = "cash"
)

// Order is a completed checkout. Subtotal is the cart total at checkout
// time, Total = Subtotal + DeliveryCharge.
type Order struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	OrderNo        string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"order_no"`
	CartToken      string         `gorm:"type:varchar(64);index" json:"-"`
	CustomerName   string         `gorm:"not null" json:"customer_name"`
	CustomerPhone  string         `gorm:"type:varchar(20);index" json:"customer_phone"`
	CustomerEmail  string         `json:"customer_email,omitempty"`
	Address        string         `json:"address,omitempty"`
	City           string         `json:"city,omitempty"`
	ZipCode        string         `gorm:"type:varchar(16)" json:"zip_code,omitempty"`
	DeliveryType   string         `gorm:"type:varchar(16);not null" json:"delivery_type"`
	DistanceKm     float64        `gorm:"default:0" json:"distance_km,omitempty"`
	PaymentMethod  string         `gorm:"type:varchar(16);not null" json:"payment_method"`
	Subtotal       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`
	DeliveryCharge Money          `gorm:"type:decimal(20,2);not null;default:0" json:"delivery_charge"`
	Total          Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total"`
	Status         string         `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`
	GatewayOrderID string         `gorm:"type:varchar(64)" json:"-"`
	TransactionID  string         `gorm:"type:varchar(64)" json:"transaction_id,omitempty"`
	PaidAt         *time.Time     `json:"paid_at,omitempty"`
	CancelledAt    *time.Time     `json:"cancelled_at,omitempty"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
