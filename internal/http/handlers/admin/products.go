package admin

import (
	"strconv"

	"github.com/kirana-store/kirana/internal/http/handlers/shared"
	"github.com/kirana-store/kirana/internal/http/response"
	"github.com/kirana-store/kirana/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductRequest is the admin create/update payload.
type ProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	Price        string  `json:"price" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	InStock      *bool   `json:"in_stock"`
	Image        string  `json:"image"`
	Description  string  `json:"description"`
	Rating       float64 `json:"rating"`
	PackQuantity float64 `json:"pack_quantity"`
	Unit         string  `json:"unit"`
	SortOrder    int     `json:"sort_order"`
}

func (r ProductRequest) toInput() (service.UpsertProductInput, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return service.UpsertProductInput{}, err
	}
	return service.UpsertProductInput{
		Name:         r.Name,
		PriceAmount:  price,
		Category:     r.Category,
		InStock:      r.InStock,
		Image:        r.Image,
		Description:  r.Description,
		Rating:       r.Rating,
		PackQuantity: r.PackQuantity,
		Unit:         r.Unit,
		SortOrder:    r.SortOrder,
	}, nil
}

// ListProducts returns the full catalog for the admin panel.
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	products, total, err := h.ProductService.ListAdmin(c.Query("category"), c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "product list failed", err)
		return
	}

	response.SuccessWithPage(c, products, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetProduct returns one product regardless of stock state.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := h.ProductService.GetAdminByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// CreateProduct adds a catalog entry.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid price", err)
		return
	}
	product, err := h.ProductService.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// UpdateProduct overwrites a catalog entry.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid price", err)
		return
	}
	product, err := h.ProductService.Update(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// SetProductStock flips availability without touching the rest of the
// product.
func (h *Handler) SetProductStock(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		InStock *bool `json:"in_stock" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	product, err := h.ProductService.SetStock(id, *req.InStock)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct removes a catalog entry.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid id", nil)
		return 0, false
	}
	return uint(id), true
}
