package public

import (
	"github.com/kirana-store/kirana/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ShareCart renders the cart as a WhatsApp message plus a wa.me link
// addressed to the shop.
func (h *Handler) ShareCart(c *gin.Context) {
	token, ok := cartToken(c)
	if !ok {
		return
	}
	export, err := h.ShareService.Export(token)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, export)
}
