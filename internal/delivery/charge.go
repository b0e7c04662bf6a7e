// Package delivery prices home delivery from order value and distance,
// and answers whether an address is serviceable at all. The distance
// itself comes from the zipcode resolver; the charge calculator only
// consumes it.
package delivery

import (
	"math"

	"github.com/shopspring/decimal"
)

// Default pricing knobs, in rupees and kilometers.
const (
	DefaultMinOrderAmount        int64   = 500
	DefaultMaxDistanceKm         float64 = 2
	DefaultBaseCharge            int64   = 30
	DefaultPerKmCharge           int64   = 10
	DefaultFreeDeliveryThreshold int64   = 500
	DefaultFreeDistanceKm        float64 = 0.5
)

// Pricing is the delivery fee schedule. The first FreeDistanceKm is never
// charged per-km; orders at or above FreeDeliveryThreshold skip the base
// charge as well.
type Pricing struct {
	MinOrderAmount        int64
	BaseCharge            int64
	PerKmCharge           int64
	FreeDeliveryThreshold int64
	FreeDistanceKm        float64
}

// DefaultPricing returns the stock fee schedule.
func DefaultPricing() Pricing {
	return Pricing{
		MinOrderAmount:        DefaultMinOrderAmount,
		BaseCharge:            DefaultBaseCharge,
		PerKmCharge:           DefaultPerKmCharge,
		FreeDeliveryThreshold: DefaultFreeDeliveryThreshold,
		FreeDistanceKm:        DefaultFreeDistanceKm,
	}
}

// Charge computes the delivery fee for an order subtotal and a resolved
// distance. The result is a whole, non-negative rupee amount (fractional
// per-km charges round up). It never fails; eligibility and the distance
// cap are separate checks.
func (p Pricing) Charge(orderAmount decimal.Decimal, distanceKm float64) int64 {
	threshold := decimal.NewFromInt(p.FreeDeliveryThreshold)
	withinFreeDistance := distanceKm <= p.FreeDistanceKm
	chargeable := distanceKm - p.FreeDistanceKm

	if orderAmount.GreaterThanOrEqual(threshold) {
		if withinFreeDistance {
			return 0
		}
		return ceilToInt(chargeable * float64(p.PerKmCharge))
	}

	if withinFreeDistance {
		return p.BaseCharge
	}
	return ceilToInt(float64(p.BaseCharge) + chargeable*float64(p.PerKmCharge))
}

// Eligible reports whether the order subtotal meets the delivery minimum.
// Pickup orders never consult this.
func (p Pricing) Eligible(orderAmount decimal.Decimal) bool {
	return orderAmount.GreaterThanOrEqual(decimal.NewFromInt(p.MinOrderAmount))
}

func ceilToInt(v float64) int64 {
	if v <= 0 {
		return 0
	}
	return int64(math.Ceil(v))
}
