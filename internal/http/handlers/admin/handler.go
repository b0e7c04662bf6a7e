package admin

import (
	"errors"

	"github.com/kirana-store/kirana/internal/http/handlers/shared"
	"github.com/kirana-store/kirana/internal/http/response"
	"github.com/kirana-store/kirana/internal/provider"
	"github.com/kirana-store/kirana/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler serves the admin API behind JWT auth.
type Handler struct {
	*provider.Container
}

// New creates the admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func respondError(c *gin.Context, code int, msg string, err error) {
	shared.RespondError(c, code, msg, err)
}

func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "not found", nil)
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, response.CodeBadRequest, "invalid input", nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, response.CodeUnauthorized, "invalid username or password", nil)
	case errors.Is(err, service.ErrCaptchaInvalid):
		respondError(c, response.CodeBadRequest, "captcha verification failed", nil)
	case errors.Is(err, service.ErrOrderNotPayable):
		respondError(c, response.CodeBadRequest, "order is not awaiting payment", nil)
	default:
		respondError(c, response.CodeInternal, "internal error", err)
	}
}
