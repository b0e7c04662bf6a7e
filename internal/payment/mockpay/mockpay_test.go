package mockpay

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func fixedGateway() *Gateway {
	g := New()
	g.Now = func() time.Time {
		return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	}
	return g
}

func validCard() *Card {
	return &Card{
		Number:     "4111 1111 1111 1111",
		HolderName: "Asha Patel",
		ExpiryDate: "12/27",
		CVV:        "123",
	}
}

func TestCreateOrder(t *testing.T) {
	g := fixedGateway()

	order, err := g.CreateOrder(decimal.RequireFromString("530.50"))
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.AmountP != 53050 {
		t.Fatalf("amount in paise = %d, want 53050", order.AmountP)
	}
	if order.Currency != "INR" {
		t.Fatalf("currency = %s, want INR", order.Currency)
	}
	if order.ID == "" {
		t.Fatalf("expected a gateway order id")
	}

	if _, err := g.CreateOrder(decimal.Zero); !errors.Is(err, ErrAmountInvalid) {
		t.Fatalf("zero amount should be rejected, got %v", err)
	}
}

func TestCaptureCard(t *testing.T) {
	g := fixedGateway()
	order, _ := g.CreateOrder(decimal.NewFromInt(500))

	result, err := g.Capture(order.ID, CaptureInput{Method: MethodCard, Card: validCard()})
	if err != nil {
		t.Fatalf("capture failed: %v", err)
	}
	if result.TransactionID == "" {
		t.Fatalf("expected a transaction id")
	}
}

func TestCaptureCardRejections(t *testing.T) {
	g := fixedGateway()
	order, _ := g.CreateOrder(decimal.NewFromInt(500))

	cases := []struct {
		name string
		card *Card
		want error
	}{
		{"missing card", nil, ErrCardInvalid},
		{"luhn failure", &Card{Number: "4111111111111112", HolderName: "A", ExpiryDate: "12/27", CVV: "123"}, ErrCardInvalid},
		{"blank holder", &Card{Number: "4111111111111111", HolderName: " ", ExpiryDate: "12/27", CVV: "123"}, ErrCardInvalid},
		{"bad cvv", &Card{Number: "4111111111111111", HolderName: "A", ExpiryDate: "12/27", CVV: "12"}, ErrCardInvalid},
		{"expired", &Card{Number: "4111111111111111", HolderName: "A", ExpiryDate: "01/25", CVV: "123"}, ErrCardExpired},
		{"bad expiry format", &Card{Number: "4111111111111111", HolderName: "A", ExpiryDate: "13/27", CVV: "123"}, ErrCardExpired},
	}
	for _, tc := range cases {
		_, err := g.Capture(order.ID, CaptureInput{Method: MethodCard, Card: tc.card})
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestCaptureExpiryMonthBoundary(t *testing.T) {
	g := fixedGateway() // now = 2025-03-10
	order, _ := g.CreateOrder(decimal.NewFromInt(500))

	card := validCard()
	card.ExpiryDate = "03/25" // valid through the end of March 2025
	if _, err := g.Capture(order.ID, CaptureInput{Method: MethodCard, Card: card}); err != nil {
		t.Fatalf("card expiring this month is still valid: %v", err)
	}
}

func TestCaptureUPI(t *testing.T) {
	g := fixedGateway()
	order, _ := g.CreateOrder(decimal.NewFromInt(500))

	if _, err := g.Capture(order.ID, CaptureInput{Method: MethodUPI, UPIID: "asha@upi"}); err != nil {
		t.Fatalf("valid upi id rejected: %v", err)
	}
	if _, err := g.Capture(order.ID, CaptureInput{Method: MethodUPI, UPIID: "not-a-upi-id"}); !errors.Is(err, ErrUPIInvalid) {
		t.Fatalf("malformed upi id should fail, got %v", err)
	}
}

func TestCaptureUnknownOrder(t *testing.T) {
	g := fixedGateway()
	if _, err := g.Capture("order_missing", CaptureInput{Method: MethodUPI, UPIID: "a@b"}); !errors.Is(err, ErrOrderUnknown) {
		t.Fatalf("unknown order should fail, got %v", err)
	}
}

func TestConcurrentCreateAndCapture(t *testing.T) {
	g := fixedGateway()
	seed, _ := g.CreateOrder(decimal.NewFromInt(250))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := g.CreateOrder(decimal.NewFromInt(100))
			if err != nil {
				t.Errorf("create order failed: %v", err)
				return
			}
			if _, err := g.Capture(order.ID, CaptureInput{Method: MethodUPI, UPIID: "asha@upi"}); err != nil {
				t.Errorf("capture failed: %v", err)
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := g.Capture(seed.ID, CaptureInput{Method: MethodCard, Card: validCard()}); err != nil {
				t.Errorf("capture of seed order failed: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestCaptureUnsupportedMethod(t *testing.T) {
	g := fixedGateway()
	order, _ := g.CreateOrder(decimal.NewFromInt(500))

	if _, err := g.Capture(order.ID, CaptureInput{Method: "cheque"}); !errors.Is(err, ErrMethodNotSupported) {
		t.Fatalf("unsupported method should fail, got %v", err)
	}
}
