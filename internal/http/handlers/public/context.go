package public

import (
	"errors"
	"strings"

	"github.com/kirana-store/kirana/internal/http/handlers/shared"
	"github.com/kirana-store/kirana/internal/http/response"
	"github.com/kirana-store/kirana/internal/service"

	"github.com/gin-gonic/gin"
)

// CartTokenHeader carries the client-generated cart identity.
const CartTokenHeader = "X-Cart-Token"

func respondError(c *gin.Context, code int, msg string, err error) {
	shared.RespondError(c, code, msg, err)
}

// cartToken pulls the cart token off the request. A missing token is a
// bad request; the client mints one before its first cart call.
func cartToken(c *gin.Context) (string, bool) {
	token := strings.TrimSpace(c.GetHeader(CartTokenHeader))
	if token == "" || len(token) > 64 {
		respondError(c, response.CodeBadRequest, "cart token missing", nil)
		return "", false
	}
	return token, true
}

// respondServiceError maps service sentinels onto response codes.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "not found", nil)
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, response.CodeBadRequest, "invalid input", nil)
	case errors.Is(err, service.ErrProductNotAvailable):
		respondError(c, response.CodeBadRequest, "product not available", nil)
	case errors.Is(err, service.ErrQuantityTooSmall):
		respondError(c, response.CodeBadRequest, "minimum order is 100 g or ml", nil)
	case errors.Is(err, service.ErrCartEmpty):
		respondError(c, response.CodeBadRequest, "cart is empty", nil)
	case errors.Is(err, service.ErrDeliveryNotEligible):
		respondError(c, response.CodeBadRequest, "order amount below delivery minimum", nil)
	case errors.Is(err, service.ErrDeliveryUnavailable):
		respondError(c, response.CodeBadRequest, "delivery not available for this address", nil)
	case errors.Is(err, service.ErrPaymentFailed):
		respondError(c, response.CodeBadRequest, err.Error(), nil)
	case errors.Is(err, service.ErrOrderNotPayable):
		respondError(c, response.CodeBadRequest, "order is not awaiting payment", nil)
	default:
		respondError(c, response.CodeInternal, "internal error", err)
	}
}
