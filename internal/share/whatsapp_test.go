package share

import (
	"strings"
	"testing"

	"github.com/kirana-store/kirana/internal/cart"
	"github.com/kirana-store/kirana/internal/models"
	"github.com/kirana-store/kirana/internal/units"
)

func testCart() *cart.Aggregate {
	atta := &models.Product{
		ID:           1,
		Name:         "Wheat (Atta)",
		PriceAmount:  models.NewMoneyFromInt(42),
		Unit:         units.UnitKg,
		PackQuantity: 1,
	}
	biscuits := &models.Product{
		ID:           2,
		Name:         "Parle-G",
		PriceAmount:  models.NewMoneyFromInt(10),
		Unit:         units.UnitPacket,
		PackQuantity: 1,
	}
	return cart.New(
		cart.Line{Product: atta, Quantity: 1200},
		cart.Line{Product: biscuits, Quantity: 3},
	)
}

func TestBuildMessage(t *testing.T) {
	msg := BuildMessage(testCart(), Options{
		StoreName:  "Sharma Kirana",
		ShowPrices: true,
	})

	if !strings.Contains(msg, "1. *Wheat (Atta)* : 1 kg 200 g") {
		t.Fatalf("weight line missing split quantity:\n%s", msg)
	}
	if !strings.Contains(msg, "2. *Parle-G* : 3") {
		t.Fatalf("count line should print the bare number:\n%s", msg)
	}
	// 1200 g + 3 packets: the list total is the aggregate's summed quantity.
	if !strings.Contains(msg, "*Total Items: 1203*") {
		t.Fatalf("total items should sum quantities:\n%s", msg)
	}
	// 1.2 kg at 42/kg plus 3 packets at 10.
	if !strings.Contains(msg, "*Total: ₹80.40*") {
		t.Fatalf("price total missing:\n%s", msg)
	}
	if !strings.Contains(msg, "Generated from Sharma Kirana") {
		t.Fatalf("store name missing:\n%s", msg)
	}
}

func TestBuildMessageHidesPrices(t *testing.T) {
	msg := BuildMessage(testCart(), Options{ShowPrices: false})

	if strings.Contains(msg, "₹") {
		t.Fatalf("prices must be omitted when ShowPrices is off:\n%s", msg)
	}
	if !strings.Contains(msg, "Generated from Kirana Store") {
		t.Fatalf("default store name missing:\n%s", msg)
	}
}

func TestShareURL(t *testing.T) {
	u := ShareURL("+919876543210", "hello *world*")
	if !strings.HasPrefix(u, "https://wa.me/919876543210?text=") {
		t.Fatalf("unexpected share url: %s", u)
	}
	if strings.Contains(u, " ") {
		t.Fatalf("message must be query-escaped: %s", u)
	}

	if u := ShareURL("", "hi"); !strings.HasPrefix(u, "https://wa.me/?text=") {
		t.Fatalf("recipient-less url: %s", u)
	}
}
