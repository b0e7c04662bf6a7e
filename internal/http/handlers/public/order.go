package public

import (
	"strings"

	"github.com/kirana-store/kirana/internal/http/response"
	"github.com/kirana-store/kirana/internal/payment/mockpay"
	"github.com/kirana-store/kirana/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest is the checkout form payload.
type CheckoutRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	DeliveryType  string `json:"delivery_type" binding:"required"`
	Address       string `json:"address"`
	City          string `json:"city"`
	ZipCode       string `json:"zip_code"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// PayRequest carries the payment instrument for a pending order.
type PayRequest struct {
	Method     string `json:"method" binding:"required"`
	CardNumber string `json:"card_number"`
	CardHolder string `json:"card_holder"`
	CardExpiry string `json:"card_expiry"`
	CardCVV    string `json:"card_cvv"`
	UPIID      string `json:"upi_id"`
}

// Checkout turns the cart into an order.
func (h *Handler) Checkout(c *gin.Context) {
	token, ok := cartToken(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	result, err := h.OrderService.Checkout(service.CheckoutInput{
		CartToken:     token,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		DeliveryType:  req.DeliveryType,
		Address:       req.Address,
		City:          req.City,
		ZipCode:       req.ZipCode,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, result)
}

// PayOrder captures a card or UPI payment.
func (h *Handler) PayOrder(c *gin.Context) {
	orderNo := strings.TrimSpace(c.Param("order_no"))
	if orderNo == "" {
		respondError(c, response.CodeBadRequest, "order_no is required", nil)
		return
	}
	var req PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	input := service.PayInput{
		OrderNo: orderNo,
		Method:  req.Method,
		UPIID:   req.UPIID,
	}
	if req.Method == mockpay.MethodCard {
		input.Card = &mockpay.Card{
			Number:     req.CardNumber,
			HolderName: req.CardHolder,
			ExpiryDate: req.CardExpiry,
			CVV:        req.CardCVV,
		}
	}

	order, err := h.OrderService.Pay(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"order": order})
}

// GetOrder returns an order by its public order number.
func (h *Handler) GetOrder(c *gin.Context) {
	orderNo := strings.TrimSpace(c.Param("order_no"))
	if orderNo == "" {
		respondError(c, response.CodeBadRequest, "order_no is required", nil)
		return
	}
	order, err := h.OrderService.GetByOrderNo(orderNo)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"order": order})
}
