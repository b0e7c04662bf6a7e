package repository

import (
	"errors"
	"time"

	"github.com/kirana-store/kirana/internal/models"

	"gorm.io/gorm"
)

// OrderListFilter narrows admin order listings.
type OrderListFilter struct {
	Page         int
	PageSize     int
	Status       string
	DeliveryType string
	OrderNo      string
	Phone        string
}

// OrderRepository is the order persistence interface.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByOrderNo(orderNo string) (*models.Order, error)
	List(filter OrderListFilter) ([]models.Order, int64, error)
	MarkPaid(id uint, transactionID string, paidAt time.Time) error
	MarkCancelled(id uint, cancelledAt time.Time) error
	ListPendingBefore(cutoff time.Time) ([]models.Order, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) OrderRepository
}

// GormOrderRepository is the GORM implementation.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository.
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Transaction runs fn inside a database transaction.
func (r *GormOrderRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// WithTx binds the repository to a transaction.
func (r *GormOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Create persists an order together with its item snapshots.
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// GetByID returns an order with items, nil when missing.
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByOrderNo returns an order with items, nil when missing.
func (r *GormOrderRepository) GetByOrderNo(orderNo string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Where("order_no = ?", orderNo).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns a page of orders plus the total row count.
func (r *GormOrderRepository) List(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DeliveryType != "" {
		query = query.Where("delivery_type = ?", filter.DeliveryType)
	}
	if filter.OrderNo != "" {
		query = query.Where("order_no = ?", filter.OrderNo)
	}
	if filter.Phone != "" {
		query = query.Where("customer_phone = ?", filter.Phone)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := applyPagination(query, filter.Page, filter.PageSize).
		Preload("Items").
		Order("id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// MarkPaid transitions a pending order to paid.
func (r *GormOrderRepository) MarkPaid(id uint, transactionID string, paidAt time.Time) error {
	return r.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", id, models.OrderStatusPending).
		Updates(map[string]interface{}{
			"status":         models.OrderStatusPaid,
			"transaction_id": transactionID,
			"paid_at":        paidAt,
		}).Error
}

// MarkCancelled transitions a pending order to cancelled.
func (r *GormOrderRepository) MarkCancelled(id uint, cancelledAt time.Time) error {
	return r.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", id, models.OrderStatusPending).
		Updates(map[string]interface{}{
			"status":       models.OrderStatusCancelled,
			"cancelled_at": cancelledAt,
		}).Error
}

// ListPendingBefore returns unpaid orders created before the cutoff, used
// by the payment timeout worker.
func (r *GormOrderRepository) ListPendingBefore(cutoff time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("status = ? AND created_at < ?", models.OrderStatusPending, cutoff).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
