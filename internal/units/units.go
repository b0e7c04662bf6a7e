package units

import (
	"math"

	"github.com/shopspring/decimal"
)

// Unit is the sale unit tag as stored on a product.
type Unit string

const (
	UnitKg     Unit = "kg"
	UnitGram   Unit = "gram"
	UnitLitre  Unit = "litre"
	UnitMl     Unit = "ml"
	UnitPacket Unit = "packet"
	UnitPiece  Unit = "piece"
	UnitDozen  Unit = "dozen"
	UnitBox    Unit = "box"
)

// Kind coarse classification of a unit. It decides which conversion and
// floor rules apply everywhere a quantity is handled.
type Kind int

const (
	KindNone Kind = iota
	KindWeight
	KindVolume
	KindCount
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindWeight:
		return "weight"
	case KindVolume:
		return "volume"
	case KindCount:
		return "count"
	default:
		return "none"
	}
}

// KindOf classifies a unit tag. Absent and unrecognized tags are unitless.
func KindOf(u Unit) Kind {
	switch u {
	case UnitKg, UnitGram:
		return KindWeight
	case UnitLitre, UnitMl:
		return KindVolume
	case UnitPacket, UnitPiece, UnitDozen, UnitBox:
		return KindCount
	default:
		return KindNone
	}
}

// ToBaseAmount converts a unit-local quantity into the integer base
// representation: grams for weight, milliliters for volume, whole units
// otherwise. Weight and volume round half-up; count-like quantities are
// clamped at zero and truncated. Non-finite input counts as zero.
func ToBaseAmount(quantity float64, u Unit) int64 {
	qty := quantity
	if math.IsNaN(qty) || math.IsInf(qty, 0) {
		qty = 0
	}
	switch u {
	case UnitKg, UnitLitre:
		return int64(math.Round(qty * 1000))
	case UnitGram, UnitMl:
		return int64(math.Round(qty))
	default:
		return int64(math.Floor(math.Max(0, qty)))
	}
}

// Pack is the sale pack a product's listed price refers to, e.g. {1, kg}
// or {500, gram}. A zero Quantity means the catalog left it out and
// defaults to 1.
type Pack struct {
	Quantity float64
	Unit     Unit
}

// BaseAmount returns the base amount one pack represents, floored to 1.
// A pack that converted to zero base units would make the price per base
// unit undefined.
func (p Pack) BaseAmount() int64 {
	qty := p.Quantity
	if qty == 0 {
		qty = 1
	}
	if p.Unit == "" {
		if base := int64(math.Floor(qty)); base > 1 {
			return base
		}
		return 1
	}
	base := ToBaseAmount(qty, p.Unit)
	if base > 0 {
		return base
	}
	return 1
}

// Normalize turns a raw user-entered quantity into a valid base amount for
// the pack's unit kind. Weight and volume entries round half-up, count
// entries truncate, and everything is floored at 1 so an increment can
// never produce an empty line. The storefront enforces its own 100 g/ml
// minimum on direct entry before calling in here.
func Normalize(p Pack, raw float64) int64 {
	qty := raw
	if math.IsNaN(qty) || math.IsInf(qty, 0) {
		qty = 0
	}
	var normalized int64
	switch KindOf(p.Unit) {
	case KindWeight, KindVolume:
		normalized = int64(math.Round(qty))
	default:
		normalized = int64(math.Floor(qty))
	}
	if normalized < 1 {
		return 1
	}
	return normalized
}

// LineTotal prices a cart line: the pack price scaled by how many base
// units the line holds relative to one pack. The result is not rounded;
// two-decimal rounding happens at presentation and persistence only.
func LineTotal(packPrice decimal.Decimal, p Pack, baseQuantity int64) decimal.Decimal {
	packBase := p.BaseAmount()
	return packPrice.Mul(decimal.NewFromInt(baseQuantity)).Div(decimal.NewFromInt(packBase))
}
