// Package cart holds the in-memory cart aggregate. All cart mutation goes
// through an Aggregate so the merge/overwrite/floor rules live in exactly
// one place; persistence is a subscriber, not a concern of the aggregate.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/kirana-store/kirana/internal/models"
	"github.com/kirana-store/kirana/internal/units"
)

// Line is one cart entry: a product reference plus a base-amount quantity
// (grams, milliliters or whole units by the product's unit kind).
type Line struct {
	Product  *models.Product
	Quantity int64
}

// Total prices the line against its product's sale pack.
func (l Line) Total() decimal.Decimal {
	if l.Product == nil {
		return decimal.Zero
	}
	return units.LineTotal(l.Product.PriceAmount.Decimal, l.Product.Pack(), l.Quantity)
}

// QuantityText renders the line quantity for display.
func (l Line) QuantityText() string {
	if l.Product == nil {
		return ""
	}
	return units.FormatBaseAmount(l.Product.Unit, l.Quantity)
}

// Aggregate is an ordered cart: at most one line per product, insertion
// order preserved, removal deletes in place without reordering. Mutations
// never fail: invalid quantities are normalized and operations on
// products not in the cart are silent no-ops, so the aggregate stays
// tolerant of stale references.
type Aggregate struct {
	lines    []Line
	onChange func(*Aggregate)
}

// New builds an aggregate from already-normalized lines, e.g. restored
// from storage.
func New(lines ...Line) *Aggregate {
	a := &Aggregate{}
	a.lines = append(a.lines, lines...)
	return a
}

// OnChange registers the callback invoked after each successful mutation.
// The storage collaborator hangs its persistence off this.
func (a *Aggregate) OnChange(fn func(*Aggregate)) {
	a.onChange = fn
}

// Add puts rawQuantity of a product into the cart. A second Add for the
// same product merges additively; a new product appends at the end.
func (a *Aggregate) Add(product *models.Product, rawQuantity float64) {
	if product == nil {
		return
	}
	qty := units.Normalize(product.Pack(), rawQuantity)
	for i := range a.lines {
		if a.lines[i].Product != nil && a.lines[i].Product.ID == product.ID {
			a.lines[i].Quantity += qty
			a.notify()
			return
		}
	}
	a.lines = append(a.lines, Line{Product: product, Quantity: qty})
	a.notify()
}

// Update overwrites a line's quantity, unlike the additive Add. A
// quantity at or below zero removes the line. Unknown product ids are a
// no-op.
func (a *Aggregate) Update(productID uint, rawQuantity float64) {
	if rawQuantity <= 0 {
		a.Remove(productID)
		return
	}
	for i := range a.lines {
		if a.lines[i].Product != nil && a.lines[i].Product.ID == productID {
			a.lines[i].Quantity = units.Normalize(a.lines[i].Product.Pack(), rawQuantity)
			a.notify()
			return
		}
	}
}

// Remove deletes the line for a product id, if present.
func (a *Aggregate) Remove(productID uint) {
	for i := range a.lines {
		if a.lines[i].Product != nil && a.lines[i].Product.ID == productID {
			a.lines = append(a.lines[:i], a.lines[i+1:]...)
			a.notify()
			return
		}
	}
}

// Clear empties the cart.
func (a *Aggregate) Clear() {
	a.lines = nil
	a.notify()
}

// Lines returns the cart lines in insertion order. The slice is a copy;
// mutate through the aggregate's operations.
func (a *Aggregate) Lines() []Line {
	out := make([]Line, len(a.lines))
	copy(out, a.lines)
	return out
}

// Line looks up the entry for a product id.
func (a *Aggregate) Line(productID uint) (Line, bool) {
	for _, l := range a.lines {
		if l.Product != nil && l.Product.ID == productID {
			return l, true
		}
	}
	return Line{}, false
}

// TotalItems counts distinct cart lines, not units: 3 packets of rusk
// plus 2 kg of atta is 2 items.
func (a *Aggregate) TotalItems() int {
	return len(a.lines)
}

// TotalPrice sums the line totals, unrounded.
func (a *Aggregate) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, l := range a.lines {
		total = total.Add(l.Total())
	}
	return total
}

// TotalQuantity sums base-amount quantities across lines. The WhatsApp
// export reports this figure, not the distinct-line count.
func (a *Aggregate) TotalQuantity() int64 {
	var total int64
	for _, l := range a.lines {
		total += l.Quantity
	}
	return total
}

func (a *Aggregate) notify() {
	if a.onChange != nil {
		a.onChange(a)
	}
}
