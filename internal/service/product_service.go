package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kirana-store/kirana/internal/cache"
	"github.com/kirana-store/kirana/internal/logger"
	"github.com/kirana-store/kirana/internal/models"
	"github.com/kirana-store/kirana/internal/repository"
	"github.com/kirana-store/kirana/internal/units"

	"github.com/shopspring/decimal"
)

const productCacheTTL = 5 * time.Minute

// ProductService handles catalog reads and admin product management.
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a product service.
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// UpsertProductInput carries create and update fields for a product.
type UpsertProductInput struct {
	Name         string
	PriceAmount  decimal.Decimal
	Category     string
	InStock      *bool
	Image        string
	Description  string
	Rating       float64
	PackQuantity float64
	Unit         string
	SortOrder    int
}

// ListPublic returns in-stock products for the storefront.
func (s *ProductService) ListPublic(category, search string, page, pageSize int) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:        page,
		PageSize:    pageSize,
		Category:    category,
		Search:      search,
		OnlyInStock: true,
	}
	return s.repo.List(filter)
}

// GetPublicByID returns an in-stock product for the storefront. Hits go
// through the Redis cache when it is enabled.
func (s *ProductService) GetPublicByID(id uint) (*models.Product, error) {
	ctx := context.Background()
	key := productCacheKey(id)
	var cached models.Product
	if hit, err := cache.GetJSON(ctx, key, &cached); err != nil {
		logger.Warnw("product_cache_read_failed", "product_id", id, "error", err)
	} else if hit {
		if !cached.InStock {
			return nil, ErrNotFound
		}
		return &cached, nil
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.InStock {
		return nil, ErrNotFound
	}
	if err := cache.SetJSON(ctx, key, product, productCacheTTL); err != nil {
		logger.Warnw("product_cache_write_failed", "product_id", id, "error", err)
	}
	return product, nil
}

// ListAdmin returns all products for the admin panel.
func (s *ProductService) ListAdmin(category, search string, page, pageSize int) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		Category: category,
		Search:   search,
	}
	return s.repo.List(filter)
}

// GetAdminByID returns a product regardless of stock state.
func (s *ProductService) GetAdminByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create validates the input and stores a new product.
func (s *ProductService) Create(input UpsertProductInput) (*models.Product, error) {
	if err := validateProductInput(&input); err != nil {
		return nil, err
	}
	product := &models.Product{
		Name:         input.Name,
		PriceAmount:  models.NewMoneyFromDecimal(input.PriceAmount),
		Category:     input.Category,
		InStock:      true,
		Image:        input.Image,
		Description:  input.Description,
		Rating:       input.Rating,
		PackQuantity: input.PackQuantity,
		Unit:         units.Unit(input.Unit),
		SortOrder:    input.SortOrder,
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update validates the input and overwrites an existing product.
func (s *ProductService) Update(id uint, input UpsertProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	if err := validateProductInput(&input); err != nil {
		return nil, err
	}
	product.Name = input.Name
	product.PriceAmount = models.NewMoneyFromDecimal(input.PriceAmount)
	product.Category = input.Category
	product.Image = input.Image
	product.Description = input.Description
	product.Rating = input.Rating
	product.PackQuantity = input.PackQuantity
	product.Unit = units.Unit(input.Unit)
	product.SortOrder = input.SortOrder
	if input.InStock != nil {
		product.InStock = *input.InStock
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	s.invalidateCache(id)
	return product, nil
}

// SetStock flips product availability.
func (s *ProductService) SetStock(id uint, inStock bool) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	product.InStock = inStock
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	s.invalidateCache(id)
	return product, nil
}

// Delete soft deletes a product.
func (s *ProductService) Delete(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache(id)
	return nil
}

func (s *ProductService) invalidateCache(id uint) {
	if err := cache.Del(context.Background(), productCacheKey(id)); err != nil {
		logger.Warnw("product_cache_invalidate_failed", "product_id", id, "error", err)
	}
}

func productCacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

func validateProductInput(input *UpsertProductInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return ErrInvalidInput
	}
	if input.PriceAmount.IsNegative() {
		return ErrInvalidInput
	}
	if input.PackQuantity < 0 {
		return ErrInvalidInput
	}
	if input.Rating < 0 || input.Rating > 5 {
		return ErrInvalidInput
	}
	return nil
}
