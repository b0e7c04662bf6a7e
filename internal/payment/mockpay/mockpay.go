// Package mockpay is the simulated payment gateway. It mirrors the shape
// of a hosted-checkout provider (create a gateway order, then capture it
// with instrument details) but performs only local validation. There is
// deliberately no real charging anywhere in this repository.
package mockpay

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAmountInvalid      = errors.New("mockpay amount invalid")
	ErrCardInvalid        = errors.New("mockpay card details invalid")
	ErrCardExpired        = errors.New("mockpay card expired")
	ErrUPIInvalid         = errors.New("mockpay upi id invalid")
	ErrMethodNotSupported = errors.New("mockpay method not supported")
	ErrOrderUnknown       = errors.New("mockpay order unknown")
)

// Methods the gateway accepts. Cash never reaches the gateway.
const (
	MethodCard = "card"
	MethodUPI  = "upi"
)

// Card is the card instrument for a capture.
type Card struct {
	Number     string
	HolderName string
	ExpiryDate string // MM/YY
	CVV        string
}

// CaptureInput carries the instrument for one capture attempt.
type CaptureInput struct {
	Method string
	Card   *Card
	UPIID  string
}

// GatewayOrder is the provider-side order created before capture.
type GatewayOrder struct {
	ID        string
	AmountP   int64 // paise, smallest currency unit
	Currency  string
	CreatedAt time.Time
}

// CaptureResult is the outcome of a capture attempt.
type CaptureResult struct {
	TransactionID string
	CapturedAt    time.Time
}

// Gateway is the in-process provider. Orders live in memory; a Now hook
// keeps expiry checks testable.
type Gateway struct {
	mu     sync.RWMutex
	orders map[string]GatewayOrder
	Now    func() time.Time
}

// New creates an empty gateway.
func New() *Gateway {
	return &Gateway{
		orders: make(map[string]GatewayOrder),
		Now:    time.Now,
	}
}

// CreateOrder registers a gateway order for an amount in rupees and
// returns the provider order id, the way a hosted gateway hands one out
// before checkout opens.
func (g *Gateway) CreateOrder(amount decimal.Decimal) (GatewayOrder, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return GatewayOrder{}, ErrAmountInvalid
	}
	order := GatewayOrder{
		ID:        "order_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:14],
		AmountP:   amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
		Currency:  "INR",
		CreatedAt: g.Now(),
	}
	g.mu.Lock()
	g.orders[order.ID] = order
	g.mu.Unlock()
	return order, nil
}

// Capture validates the instrument against the gateway order and returns
// a transaction id. Validation is the whole simulation: a well-formed
// instrument always succeeds.
func (g *Gateway) Capture(orderID string, input CaptureInput) (CaptureResult, error) {
	g.mu.RLock()
	_, ok := g.orders[orderID]
	g.mu.RUnlock()
	if !ok {
		return CaptureResult{}, ErrOrderUnknown
	}
	switch input.Method {
	case MethodCard:
		if err := g.validateCard(input.Card); err != nil {
			return CaptureResult{}, err
		}
	case MethodUPI:
		if !validUPI(input.UPIID) {
			return CaptureResult{}, ErrUPIInvalid
		}
	default:
		return CaptureResult{}, ErrMethodNotSupported
	}

	now := g.Now()
	return CaptureResult{
		TransactionID: fmt.Sprintf("TXN%d%s", now.UnixMilli(), strings.ToUpper(uuid.NewString()[:6])),
		CapturedAt:    now,
	}, nil
}

func (g *Gateway) validateCard(card *Card) error {
	if card == nil {
		return ErrCardInvalid
	}
	if strings.TrimSpace(card.HolderName) == "" {
		return ErrCardInvalid
	}
	if !validCardNumber(card.Number) {
		return ErrCardInvalid
	}
	if !validCVV(card.CVV) {
		return ErrCardInvalid
	}
	if !g.validExpiry(card.ExpiryDate) {
		return ErrCardExpired
	}
	return nil
}

var (
	cardNumberPattern = regexp.MustCompile(`^\d{13,19}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	upiPattern        = regexp.MustCompile(`^[\w.-]+@\w+$`)
)

// validCardNumber runs the Luhn check over the digits.
func validCardNumber(number string) bool {
	cleaned := strings.ReplaceAll(number, " ", "")
	if !cardNumberPattern.MatchString(cleaned) {
		return false
	}
	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		digit := int(cleaned[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}

func validCVV(cvv string) bool {
	return cvvPattern.MatchString(cvv)
}

func (g *Gateway) validExpiry(expiry string) bool {
	if !expiryPattern.MatchString(expiry) {
		return false
	}
	parts := strings.SplitN(expiry, "/", 2)
	month := int(parts[0][0]-'0')*10 + int(parts[0][1]-'0')
	year := 2000 + int(parts[1][0]-'0')*10 + int(parts[1][1]-'0')
	// Valid through the end of the printed month.
	endOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return g.Now().Before(endOfMonth)
}

func validUPI(upiID string) bool {
	return upiPattern.MatchString(strings.TrimSpace(upiID))
}
