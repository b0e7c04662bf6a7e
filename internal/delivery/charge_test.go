package delivery

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestChargeAboveThreshold(t *testing.T) {
	p := DefaultPricing()

	// Within the free distance: delivery is entirely free.
	if got := p.Charge(decimal.NewFromInt(600), 0.3); got != 0 {
		t.Fatalf("600 at 0.3km = %d, want 0", got)
	}
	// Beyond: only the distance past 0.5km is charged, rounded up.
	if got := p.Charge(decimal.NewFromInt(600), 1.5); got != 10 {
		t.Fatalf("600 at 1.5km = %d, want 10", got)
	}
	if got := p.Charge(decimal.NewFromInt(600), 1.55); got != 11 {
		t.Fatalf("fractional km rounds up: got %d, want 11", got)
	}
	// Exactly at the threshold counts as above.
	if got := p.Charge(decimal.NewFromInt(500), 0.5); got != 0 {
		t.Fatalf("500 at 0.5km = %d, want 0", got)
	}
}

func TestChargeBelowThreshold(t *testing.T) {
	p := DefaultPricing()

	if got := p.Charge(decimal.NewFromInt(200), 0.3); got != 30 {
		t.Fatalf("200 at 0.3km = %d, want base charge 30", got)
	}
	if got := p.Charge(decimal.NewFromInt(200), 1.5); got != 40 {
		t.Fatalf("200 at 1.5km = %d, want 40", got)
	}
	if got := p.Charge(decimal.RequireFromString("499.99"), 0.5); got != 30 {
		t.Fatalf("just under the threshold keeps the base charge, got %d", got)
	}
}

func TestEligible(t *testing.T) {
	p := DefaultPricing()

	if p.Eligible(decimal.RequireFromString("499.99")) {
		t.Fatalf("below the minimum order must not be delivery eligible")
	}
	if !p.Eligible(decimal.NewFromInt(500)) {
		t.Fatalf("exactly the minimum order is eligible")
	}
	if !p.Eligible(decimal.NewFromInt(1200)) {
		t.Fatalf("above the minimum order is eligible")
	}
}

type fixedResolver struct {
	km float64
	ok bool
}

func (r fixedResolver) DistanceKm(string) (float64, bool) { return r.km, r.ok }

func TestCheckAvailable(t *testing.T) {
	c := NewChecker(DefaultPricing(), fixedResolver{km: 1.2, ok: true})

	got := c.Check("110005")
	if !got.Available {
		t.Fatalf("1.2km should be serviceable: %+v", got)
	}
	if got.DistanceKm != 1.2 {
		t.Fatalf("distance = %v, want 1.2", got.DistanceKm)
	}
	if got.Charge != 37 {
		t.Fatalf("distance-only charge = %d, want 37", got.Charge)
	}
}

func TestCheckBeyondMaxDistance(t *testing.T) {
	c := NewChecker(DefaultPricing(), fixedResolver{km: 3.4, ok: true})

	got := c.Check("999999")
	if got.Available {
		t.Fatalf("3.4km is past the 2km cap: %+v", got)
	}
	if got.DistanceKm != 3.4 {
		t.Fatalf("the refusal should still report the distance, got %v", got.DistanceKm)
	}
	if got.Message == "" {
		t.Fatalf("refusal needs a customer-facing message")
	}
}

func TestCheckUnresolvedZip(t *testing.T) {
	c := NewChecker(DefaultPricing(), fixedResolver{ok: false})

	got := c.Check("000000")
	if got.Available {
		t.Fatalf("unverifiable locations are not serviceable")
	}
	if got.Message == "" {
		t.Fatalf("refusal needs a customer-facing message")
	}
}
