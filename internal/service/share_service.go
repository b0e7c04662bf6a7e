package service

import (
	"github.com/kirana-store/kirana/internal/config"
	"github.com/kirana-store/kirana/internal/share"
)

// ShareExport is a ready-to-send WhatsApp handoff for a cart.
type ShareExport struct {
	Message  string `json:"message"`
	ShareURL string `json:"share_url"`
}

// ShareService renders carts as WhatsApp messages addressed to the shop.
type ShareService struct {
	cartService *CartService
	storeName   string
	phone       string
	showPrices  bool
}

// NewShareService creates a share service.
func NewShareService(cartService *CartService, storeCfg config.StoreConfig, showPrices bool) *ShareService {
	return &ShareService{
		cartService: cartService,
		storeName:   storeCfg.Name,
		phone:       storeCfg.WhatsAppNumber,
		showPrices:  showPrices,
	}
}

// Export builds the message and wa.me link for a cart.
func (s *ShareService) Export(cartToken string) (*ShareExport, error) {
	agg, err := s.cartService.Aggregate(cartToken)
	if err != nil {
		return nil, err
	}
	if agg.TotalItems() == 0 {
		return nil, ErrCartEmpty
	}
	message := share.BuildMessage(agg, share.Options{
		StoreName:  s.storeName,
		ShowPrices: s.showPrices,
	})
	return &ShareExport{
		Message:  message,
		ShareURL: share.ShareURL(s.phone, message),
	}, nil
}
