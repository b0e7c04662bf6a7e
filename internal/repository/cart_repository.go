package repository

import (
	"errors"

	"github.com/kirana-store/kirana/internal/models"

	"gorm.io/gorm"
)

// CartRepository is the cart persistence interface. Carts are keyed by
// the guest cart token.
type CartRepository interface {
	ListByToken(cartToken string) ([]models.CartItem, error)
	ReplaceAll(cartToken string, items []models.CartItem) error
	DeleteByTokenAndProduct(cartToken string, productID uint) error
	ClearByToken(cartToken string) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByToken returns the cart rows in insertion order with products
// preloaded.
func (r *GormCartRepository) ListByToken(cartToken string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Preload("Product").
		Where("cart_token = ?", cartToken).
		Order("position ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ReplaceAll writes the full cart state for a token in one transaction:
// rows are upserted in order and rows for products no longer present are
// deleted. The cart aggregate computes the desired state; this only
// mirrors it.
func (r *GormCartRepository) ReplaceAll(cartToken string, items []models.CartItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		keep := make([]uint, 0, len(items))
		for position := range items {
			item := &items[position]
			item.CartToken = cartToken
			item.Position = position
			keep = append(keep, item.ProductID)

			var existing models.CartItem
			err := tx.Where("cart_token = ? AND product_id = ?", cartToken, item.ProductID).
				First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := tx.Create(item).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			updates := map[string]interface{}{
				"quantity": item.Quantity,
				"position": item.Position,
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
		}

		query := tx.Where("cart_token = ?", cartToken)
		if len(keep) > 0 {
			query = query.Where("product_id NOT IN ?", keep)
		}
		return query.Delete(&models.CartItem{}).Error
	})
}

// DeleteByTokenAndProduct removes one cart row.
func (r *GormCartRepository) DeleteByTokenAndProduct(cartToken string, productID uint) error {
	return r.db.Where("cart_token = ? AND product_id = ?", cartToken, productID).
		Delete(&models.CartItem{}).Error
}

// ClearByToken empties a cart.
func (r *GormCartRepository) ClearByToken(cartToken string) error {
	return r.db.Where("cart_token = ?", cartToken).Delete(&models.CartItem{}).Error
}
