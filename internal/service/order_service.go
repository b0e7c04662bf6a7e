package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/kirana-store/kirana/internal/logger"
	"github.com/kirana-store/kirana/internal/models"
	"github.com/kirana-store/kirana/internal/payment/mockpay"
	"github.com/kirana-store/kirana/internal/queue"
	"github.com/kirana-store/kirana/internal/repository"
)

// CheckoutInput is everything the checkout form submits.
type CheckoutInput struct {
	CartToken     string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	DeliveryType  string
	Address       string
	City          string
	ZipCode       string
	PaymentMethod string
}

// CheckoutResult returns the created order plus the gateway order id the
// client needs to complete a card or UPI payment. Cash orders have none.
type CheckoutResult struct {
	Order          *models.Order `json:"order"`
	GatewayOrderID string        `json:"gateway_order_id,omitempty"`
}

// PayInput carries the payment instrument for a pending order.
type PayInput struct {
	OrderNo string
	Method  string
	Card    *mockpay.Card
	UPIID   string
}

// OrderService drives checkout, payment and order administration.
type OrderService struct {
	orderRepo       repository.OrderRepository
	cartService     *CartService
	deliveryService *DeliveryService
	gateway         *mockpay.Gateway
	queueClient     *queue.Client
	expireMinutes   int
}

// NewOrderService creates an order service.
func NewOrderService(orderRepo repository.OrderRepository, cartService *CartService, deliveryService *DeliveryService, gateway *mockpay.Gateway, queueClient *queue.Client, expireMinutes int) *OrderService {
	if expireMinutes <= 0 {
		expireMinutes = 30
	}
	return &OrderService{
		orderRepo:       orderRepo,
		cartService:     cartService,
		deliveryService: deliveryService,
		gateway:         gateway,
		queueClient:     queueClient,
		expireMinutes:   expireMinutes,
	}
}

// Checkout turns the cart into a pending order. Delivery orders must
// clear the order minimum and resolve to an address inside the service
// radius; pickup orders skip both checks. Card and UPI orders also get a
// gateway order for the capture step.
func (s *OrderService) Checkout(input CheckoutInput) (*CheckoutResult, error) {
	if err := validateCheckoutInput(&input); err != nil {
		return nil, err
	}

	agg, err := s.cartService.Aggregate(input.CartToken)
	if err != nil {
		return nil, err
	}
	if agg.TotalItems() == 0 {
		return nil, ErrCartEmpty
	}

	subtotal := agg.TotalPrice()
	var distanceKm float64
	var charge int64
	if input.DeliveryType == models.DeliveryTypeDelivery {
		distanceKm, charge, err = s.deliveryService.Quote(subtotal, input.ZipCode)
		if err != nil {
			return nil, err
		}
	}
	total := subtotal.Add(models.NewMoneyFromInt(charge).Decimal)

	order := &models.Order{
		OrderNo:        generateOrderNo(),
		CartToken:      input.CartToken,
		CustomerName:   input.CustomerName,
		CustomerPhone:  input.CustomerPhone,
		CustomerEmail:  input.CustomerEmail,
		Address:        input.Address,
		City:           input.City,
		ZipCode:        input.ZipCode,
		DeliveryType:   input.DeliveryType,
		DistanceKm:     distanceKm,
		PaymentMethod:  input.PaymentMethod,
		Subtotal:       models.NewMoneyFromDecimal(subtotal),
		DeliveryCharge: models.NewMoneyFromInt(charge),
		Total:          models.NewMoneyFromDecimal(total),
		Status:         models.OrderStatusPending,
	}
	for _, line := range agg.Lines() {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:    line.Product.ID,
			ProductName:  line.Product.Name,
			UnitPrice:    line.Product.PriceAmount,
			PackQuantity: line.Product.PackQuantity,
			Unit:         line.Product.Unit,
			Quantity:     line.Quantity,
			QuantityText: line.QuantityText(),
			LineTotal:    models.NewMoneyFromDecimal(line.Total()),
		})
	}

	gatewayOrderID := ""
	if input.PaymentMethod != models.PaymentMethodCash {
		gatewayOrder, err := s.gateway.CreateOrder(total)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOrderCreateFailed, err)
		}
		gatewayOrderID = gatewayOrder.ID
		order.GatewayOrderID = gatewayOrderID
	}

	if err := s.orderRepo.Create(order); err != nil {
		logger.Errorw("order_create_failed",
			"order_no", order.OrderNo,
			"error", err,
		)
		return nil, ErrOrderCreateFailed
	}

	if err := s.cartService.Clear(input.CartToken); err != nil {
		logger.Warnw("cart_clear_after_checkout_failed",
			"order_no", order.OrderNo,
			"error", err,
		)
	}

	if err := s.queueClient.EnqueueOrderNotify(queue.OrderNotifyPayload{OrderID: order.ID}); err != nil {
		logger.Errorw("order_enqueue_notify_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"error", err,
		)
	}
	if input.PaymentMethod != models.PaymentMethodCash {
		if err := s.queueClient.EnqueueOrderTimeoutCancel(queue.OrderTimeoutCancelPayload{
			OrderID: order.ID,
		}, time.Duration(s.expireMinutes)*time.Minute); err != nil {
			logger.Errorw("order_enqueue_timeout_cancel_failed",
				"order_id", order.ID,
				"order_no", order.OrderNo,
				"error", err,
			)
		}
	}

	return &CheckoutResult{Order: order, GatewayOrderID: gatewayOrderID}, nil
}

// Pay captures a card or UPI payment for a pending order.
func (s *OrderService) Pay(input PayInput) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNo(strings.TrimSpace(input.OrderNo))
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if order.Status != models.OrderStatusPending {
		return nil, ErrOrderNotPayable
	}
	if order.PaymentMethod == models.PaymentMethodCash || order.GatewayOrderID == "" {
		return nil, ErrOrderNotPayable
	}
	if input.Method != order.PaymentMethod {
		return nil, ErrInvalidInput
	}

	result, err := s.gateway.Capture(order.GatewayOrderID, mockpay.CaptureInput{
		Method: input.Method,
		Card:   input.Card,
		UPIID:  input.UPIID,
	})
	if err != nil {
		logger.Infow("payment_capture_rejected",
			"order_no", order.OrderNo,
			"method", input.Method,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	if err := s.orderRepo.MarkPaid(order.ID, result.TransactionID, result.CapturedAt); err != nil {
		return nil, err
	}
	logger.Infow("order_paid",
		"order_no", order.OrderNo,
		"transaction_id", result.TransactionID,
	)
	return s.orderRepo.GetByID(order.ID)
}

// GetByOrderNo returns an order for customer tracking.
func (s *OrderService) GetByOrderNo(orderNo string) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNo(strings.TrimSpace(orderNo))
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// ListAdmin returns a page of orders for the admin panel.
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// AdminMarkPaid settles an order out of band, typically cash on handover.
func (s *OrderService) AdminMarkPaid(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if order.Status != models.OrderStatusPending {
		return nil, ErrOrderNotPayable
	}
	now := time.Now()
	txnID := fmt.Sprintf("CASH%d", now.UnixMilli())
	if err := s.orderRepo.MarkPaid(order.ID, txnID, now); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(order.ID)
}

// AdminCancel cancels a pending order.
func (s *OrderService) AdminCancel(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if order.Status != models.OrderStatusPending {
		return nil, ErrOrderNotPayable
	}
	if err := s.orderRepo.MarkCancelled(order.ID, time.Now()); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(order.ID)
}

// CancelIfUnpaid cancels an order that is still pending. The timeout
// worker calls this when the payment window lapses; orders already paid
// or cancelled are left alone.
func (s *OrderService) CancelIfUnpaid(orderID uint) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil || order.Status != models.OrderStatusPending {
		return nil
	}
	if err := s.orderRepo.MarkCancelled(order.ID, time.Now()); err != nil {
		return err
	}
	logger.Infow("order_timeout_cancelled",
		"order_id", order.ID,
		"order_no", order.OrderNo,
	)
	return nil
}

// SweepExpired cancels card and UPI orders still pending past the
// payment window. The worker runs this at startup to catch orders whose
// scheduled timeout task was lost. Cash orders never expire.
func (s *OrderService) SweepExpired() error {
	cutoff := time.Now().Add(-time.Duration(s.expireMinutes) * time.Minute)
	orders, err := s.orderRepo.ListPendingBefore(cutoff)
	if err != nil {
		return err
	}
	for _, order := range orders {
		if order.PaymentMethod == models.PaymentMethodCash {
			continue
		}
		if err := s.orderRepo.MarkCancelled(order.ID, time.Now()); err != nil {
			logger.Warnw("order_expired_sweep_cancel_failed",
				"order_id", order.ID,
				"order_no", order.OrderNo,
				"error", err,
			)
			continue
		}
		logger.Infow("order_expired_cancelled",
			"order_id", order.ID,
			"order_no", order.OrderNo,
		)
	}
	return nil
}

func validateCheckoutInput(input *CheckoutInput) error {
	input.CartToken = strings.TrimSpace(input.CartToken)
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.CustomerPhone = strings.TrimSpace(input.CustomerPhone)
	input.Address = strings.TrimSpace(input.Address)
	input.ZipCode = strings.TrimSpace(input.ZipCode)
	if input.CartToken == "" || input.CustomerName == "" || input.CustomerPhone == "" {
		return ErrInvalidInput
	}
	switch input.DeliveryType {
	case models.DeliveryTypePickup:
	case models.DeliveryTypeDelivery:
		if input.Address == "" || input.ZipCode == "" {
			return ErrInvalidInput
		}
	default:
		return ErrInvalidInput
	}
	switch input.PaymentMethod {
	case models.PaymentMethodCard, models.PaymentMethodUPI, models.PaymentMethodCash:
	default:
		return ErrInvalidInput
	}
	return nil
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("KS%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		fmt.Fprintf(&b, "%d", n.Int64())
	}
	return b.String()
}
