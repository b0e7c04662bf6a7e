package cart

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kirana-store/kirana/internal/models"
	"github.com/kirana-store/kirana/internal/units"
)

func countProduct(id uint, price string) *models.Product {
	return &models.Product{
		ID:           id,
		Name:         "test product",
		PriceAmount:  models.NewMoneyFromDecimal(decimal.RequireFromString(price)),
		Unit:         units.UnitPiece,
		PackQuantity: 1,
	}
}

func weightProduct(id uint, price string) *models.Product {
	return &models.Product{
		ID:           id,
		Name:         "test product",
		PriceAmount:  models.NewMoneyFromDecimal(decimal.RequireFromString(price)),
		Unit:         units.UnitKg,
		PackQuantity: 1,
	}
}

func TestAddMergesAdditively(t *testing.T) {
	a := New()
	p := countProduct(1, "40.00")
	a.Add(p, 2)
	a.Add(p, 3)

	line, ok := a.Line(1)
	if !ok {
		t.Fatalf("expected a line for product 1")
	}
	if line.Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", line.Quantity)
	}
	if a.TotalItems() != 1 {
		t.Fatalf("expected 1 line after merge, got %d", a.TotalItems())
	}
}

func TestUpdateOverwrites(t *testing.T) {
	a := New()
	p := countProduct(1, "40.00")
	a.Add(p, 2)
	a.Add(p, 3)
	a.Update(1, 7)

	line, _ := a.Line(1)
	if line.Quantity != 7 {
		t.Fatalf("update must overwrite, not add: got %d, want 7", line.Quantity)
	}
}

func TestUpdateZeroRemoves(t *testing.T) {
	a := New()
	a.Add(countProduct(1, "40.00"), 2)
	a.Update(1, 0)

	if _, ok := a.Line(1); ok {
		t.Fatalf("quantity 0 should remove the line")
	}
	if a.TotalItems() != 0 {
		t.Fatalf("expected empty cart, got %d lines", a.TotalItems())
	}
}

func TestStaleReferencesAreNoOps(t *testing.T) {
	a := New()
	a.Add(countProduct(1, "40.00"), 1)

	a.Update(99, 5)
	a.Remove(99)

	if a.TotalItems() != 1 {
		t.Fatalf("operations on unknown ids must not disturb the cart")
	}
}

func TestTotalItemsCountsDistinctLines(t *testing.T) {
	a := New()
	a.Add(countProduct(1, "40.00"), 1)
	a.Add(weightProduct(2, "42.00"), 5000)

	if got := a.TotalItems(); got != 2 {
		t.Fatalf("1 unit of A plus 5000 g of B is 2 items, got %d", got)
	}
}

func TestTotalPrice(t *testing.T) {
	a := New()
	// 3 pieces at 40 each.
	a.Add(countProduct(1, "40.00"), 3)
	// 1.5 kg at 84 per kg.
	a.Add(weightProduct(2, "84.00"), 1500)

	want := decimal.RequireFromString("246") // 120 + 126
	if got := a.TotalPrice(); !got.Equal(want) {
		t.Fatalf("total price = %s, want %s", got, want)
	}
}

func TestTotalQuantitySumsBaseAmounts(t *testing.T) {
	a := New()
	a.Add(countProduct(1, "40.00"), 3)
	a.Add(weightProduct(2, "84.00"), 1500)

	// 3 pieces + 1500 g, unlike TotalItems which stays at 2.
	if got := a.TotalQuantity(); got != 1503 {
		t.Fatalf("total quantity = %d, want 1503", got)
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	a := New()
	a.Add(countProduct(3, "10.00"), 1)
	a.Add(countProduct(1, "10.00"), 1)
	a.Add(countProduct(2, "10.00"), 1)
	a.Add(countProduct(1, "10.00"), 1) // merge, must not reorder
	a.Remove(1)

	lines := a.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Product.ID != 3 || lines[1].Product.ID != 2 {
		t.Fatalf("removal must delete in place: got order %d, %d", lines[0].Product.ID, lines[1].Product.ID)
	}
}

func TestWeightQuantityNormalizedOnAdd(t *testing.T) {
	a := New()
	a.Add(weightProduct(1, "84.00"), 1200.4)

	line, _ := a.Line(1)
	if line.Quantity != 1200 {
		t.Fatalf("raw weight entry should normalize to 1200 g, got %d", line.Quantity)
	}
}

func TestOnChangeFiresPerMutation(t *testing.T) {
	a := New()
	var fired int
	a.OnChange(func(*Aggregate) { fired++ })

	p := countProduct(1, "40.00")
	a.Add(p, 1)    // 1
	a.Add(p, 2)    // 2 (merge still mutates)
	a.Update(1, 5) // 3
	a.Remove(99)   // no-op, must not fire
	a.Update(42, 1) // no-op, must not fire
	a.Remove(1)    // 4
	a.Clear()      // 5

	if fired != 5 {
		t.Fatalf("expected 5 change notifications, got %d", fired)
	}
}

func TestRestoredCartKeepsQuantities(t *testing.T) {
	p := weightProduct(1, "84.00")
	a := New(Line{Product: p, Quantity: 800})

	line, ok := a.Line(1)
	if !ok || line.Quantity != 800 {
		t.Fatalf("restored line lost its quantity")
	}
	if got := line.QuantityText(); got != "800 g" {
		t.Fatalf("quantity text = %q, want %q", got, "800 g")
	}
}
