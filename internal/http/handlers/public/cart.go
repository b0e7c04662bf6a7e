package public

import (
	"github.com/kirana-store/kirana/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CartItemRequest is the add/update payload. Quantity is in the pack's
// input scale: grams or millilitres for measured goods, pack count for
// the rest.
type CartItemRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  float64 `json:"quantity"`
}

// GetCart returns the cart for the request's token.
func (h *Handler) GetCart(c *gin.Context) {
	token, ok := cartToken(c)
	if !ok {
		return
	}
	detail, err := h.CartService.Get(token)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, detail)
}

// AddCartItem merges a quantity into the cart.
func (h *Handler) AddCartItem(c *gin.Context) {
	token, ok := cartToken(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	detail, err := h.CartService.Add(token, req.ProductID, req.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, detail)
}

// UpdateCartItem overwrites a line quantity; zero or below removes it.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	token, ok := cartToken(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	detail, err := h.CartService.Update(token, req.ProductID, req.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, detail)
}

// RemoveCartItem drops one line.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	token, ok := cartToken(c)
	if !ok {
		return
	}
	var req struct {
		ProductID uint `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	detail, err := h.CartService.Remove(token, req.ProductID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, detail)
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(c *gin.Context) {
	token, ok := cartToken(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(token); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
