package public

import (
	"strconv"

	"github.com/kirana-store/kirana/internal/http/handlers/shared"
	"github.com/kirana-store/kirana/internal/http/response"
	"github.com/kirana-store/kirana/internal/units"

	"github.com/gin-gonic/gin"
)

// ListProducts returns the in-stock catalog, optionally filtered by
// category and search text.
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	products, total, err := h.ProductService.ListPublic(c.Query("category"), c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "product list failed", err)
		return
	}

	totalPage := (total + int64(pageSize) - 1) / int64(pageSize)
	response.SuccessWithPage(c, gin.H{"products": products}, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// GetProduct returns one in-stock product with its pack description.
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}

	product, err := h.ProductService.GetPublicByID(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	pack := product.Pack()
	response.Success(c, gin.H{
		"product":   product,
		"pack_text": units.FormatBaseAmount(product.Unit, pack.BaseAmount()),
	})
}
