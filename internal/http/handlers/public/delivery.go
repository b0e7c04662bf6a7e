package public

import (
	"strings"

	"github.com/kirana-store/kirana/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CheckDelivery reports whether a zip code can be delivered to, with the
// resolved distance and distance-only charge.
func (h *Handler) CheckDelivery(c *gin.Context) {
	zipCode := strings.TrimSpace(c.Query("zip_code"))
	if zipCode == "" {
		respondError(c, response.CodeBadRequest, "zip_code is required", nil)
		return
	}
	response.Success(c, h.DeliveryService.Check(zipCode))
}
