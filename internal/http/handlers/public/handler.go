package public

import "github.com/kirana-store/kirana/internal/provider"

// Handler serves the storefront API: catalog, cart, delivery checks,
// checkout and the WhatsApp export. No authentication is involved; carts
// are keyed by a client-held token.
type Handler struct {
	*provider.Container
}

// New creates the storefront handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
