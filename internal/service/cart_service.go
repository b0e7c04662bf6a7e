package service

import (
	"strings"

	"github.com/kirana-store/kirana/internal/cart"
	"github.com/kirana-store/kirana/internal/models"
	"github.com/kirana-store/kirana/internal/repository"
	"github.com/kirana-store/kirana/internal/units"
)

// MinMeasuredQuantity is the smallest order amount for weight and volume
// packs, in grams or millilitres.
const MinMeasuredQuantity = 100

// CartLineDetail is one cart line in a response.
type CartLineDetail struct {
	ProductID    uint            `json:"product_id"`
	Quantity     int64           `json:"quantity"`
	QuantityText string          `json:"quantity_text"`
	LineTotal    models.Money    `json:"line_total"`
	Product      *models.Product `json:"product"`
}

// CartDetail is the full cart in a response.
type CartDetail struct {
	Lines      []CartLineDetail `json:"lines"`
	TotalItems int              `json:"total_items"`
	TotalPrice models.Money     `json:"total_price"`
}

// CartService loads carts into aggregates, applies mutations and mirrors
// the result back to storage.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// Get returns the cart for a token. Lines whose product has gone missing
// or out of stock are pruned from storage.
func (s *CartService) Get(cartToken string) (*CartDetail, error) {
	agg, err := s.loadAggregate(cartToken)
	if err != nil {
		return nil, err
	}
	return buildCartDetail(agg), nil
}

// Add merges a quantity into the cart. Quantities for the same product
// accumulate.
func (s *CartService) Add(cartToken string, productID uint, quantity float64) (*CartDetail, error) {
	if strings.TrimSpace(cartToken) == "" || productID == 0 {
		return nil, ErrInvalidInput
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.InStock {
		return nil, ErrProductNotAvailable
	}
	if err := checkMinQuantity(product, quantity); err != nil {
		return nil, err
	}
	agg, err := s.loadAggregate(cartToken)
	if err != nil {
		return nil, err
	}
	var persistErr error
	agg.OnChange(func(a *cart.Aggregate) {
		persistErr = s.persist(cartToken, a)
	})
	agg.Add(product, quantity)
	if persistErr != nil {
		return nil, persistErr
	}
	return buildCartDetail(agg), nil
}

// Update overwrites a line quantity. Zero or negative removes the line.
// Unknown product ids are ignored.
func (s *CartService) Update(cartToken string, productID uint, quantity float64) (*CartDetail, error) {
	if strings.TrimSpace(cartToken) == "" || productID == 0 {
		return nil, ErrInvalidInput
	}
	agg, err := s.loadAggregate(cartToken)
	if err != nil {
		return nil, err
	}
	if quantity > 0 {
		if line, ok := agg.Line(productID); ok {
			if err := checkMinQuantity(line.Product, quantity); err != nil {
				return nil, err
			}
		}
	}
	var persistErr error
	agg.OnChange(func(a *cart.Aggregate) {
		persistErr = s.persist(cartToken, a)
	})
	agg.Update(productID, quantity)
	if persistErr != nil {
		return nil, persistErr
	}
	return buildCartDetail(agg), nil
}

// Remove drops a line. Unknown product ids are ignored.
func (s *CartService) Remove(cartToken string, productID uint) (*CartDetail, error) {
	if strings.TrimSpace(cartToken) == "" || productID == 0 {
		return nil, ErrInvalidInput
	}
	agg, err := s.loadAggregate(cartToken)
	if err != nil {
		return nil, err
	}
	var persistErr error
	agg.OnChange(func(a *cart.Aggregate) {
		persistErr = s.persist(cartToken, a)
	})
	agg.Remove(productID)
	if persistErr != nil {
		return nil, persistErr
	}
	return buildCartDetail(agg), nil
}

// Clear empties the cart.
func (s *CartService) Clear(cartToken string) error {
	if strings.TrimSpace(cartToken) == "" {
		return ErrInvalidInput
	}
	return s.cartRepo.ClearByToken(cartToken)
}

// Aggregate exposes the loaded cart to the order flow.
func (s *CartService) Aggregate(cartToken string) (*cart.Aggregate, error) {
	return s.loadAggregate(cartToken)
}

func (s *CartService) loadAggregate(cartToken string) (*cart.Aggregate, error) {
	items, err := s.cartRepo.ListByToken(cartToken)
	if err != nil {
		return nil, err
	}
	lines := make([]cart.Line, 0, len(items))
	for _, item := range items {
		product := item.Product
		if product == nil || product.ID == 0 {
			p, err := s.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, err
			}
			product = p
		}
		if product == nil || !product.InStock {
			_ = s.cartRepo.DeleteByTokenAndProduct(cartToken, item.ProductID)
			continue
		}
		lines = append(lines, cart.Line{Product: product, Quantity: item.Quantity})
	}
	return cart.New(lines...), nil
}

func (s *CartService) persist(cartToken string, agg *cart.Aggregate) error {
	lines := agg.Lines()
	items := make([]models.CartItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.CartItem{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
		})
	}
	return s.cartRepo.ReplaceAll(cartToken, items)
}

// checkMinQuantity rejects weight and volume amounts under 100 g or ml.
// Count packs have no floor beyond the normalizer's own minimum of one.
func checkMinQuantity(product *models.Product, quantity float64) error {
	if product == nil {
		return nil
	}
	kind := units.KindOf(product.Unit)
	if kind == units.KindWeight || kind == units.KindVolume {
		if quantity < MinMeasuredQuantity {
			return ErrQuantityTooSmall
		}
	}
	return nil
}

func buildCartDetail(agg *cart.Aggregate) *CartDetail {
	lines := agg.Lines()
	details := make([]CartLineDetail, 0, len(lines))
	for _, line := range lines {
		details = append(details, CartLineDetail{
			ProductID:    line.Product.ID,
			Quantity:     line.Quantity,
			QuantityText: line.QuantityText(),
			LineTotal:    models.NewMoneyFromDecimal(line.Total()),
			Product:      line.Product,
		})
	}
	return &CartDetail{
		Lines:      details,
		TotalItems: agg.TotalItems(),
		TotalPrice: models.NewMoneyFromDecimal(agg.TotalPrice()),
	}
}
