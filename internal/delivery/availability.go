package delivery

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Availability is the structured answer to "can we deliver here". It is
// a result, not an error: the checkout collaborator renders Message to
// the customer either way.
type Availability struct {
	Available  bool    `json:"available"`
	DistanceKm float64 `json:"distance_km,omitempty"`
	Charge     int64   `json:"delivery_charge,omitempty"`
	Message    string  `json:"message,omitempty"`
}

// DistanceResolver resolves a candidate zip code to a distance from the
// store in kilometers. ok is false when the location cannot be verified.
type DistanceResolver interface {
	DistanceKm(zipCode string) (float64, bool)
}

// Checker combines a distance resolver with the fee schedule and the
// serviceability cap.
type Checker struct {
	Pricing       Pricing
	MaxDistanceKm float64
	Resolver      DistanceResolver
}

// NewChecker builds a checker with the default 2 km cap.
func NewChecker(pricing Pricing, resolver DistanceResolver) *Checker {
	return &Checker{
		Pricing:       pricing,
		MaxDistanceKm: DefaultMaxDistanceKm,
		Resolver:      resolver,
	}
}

// Check resolves the zip code and reports availability, distance and the
// distance-only charge (order amount 0; checkout recomputes the real
// charge once the subtotal is known).
func (c *Checker) Check(zipCode string) Availability {
	if c.Resolver == nil {
		return Availability{
			Available: false,
			Message:   "Unable to verify delivery location. Please contact us.",
		}
	}
	distance, ok := c.Resolver.DistanceKm(zipCode)
	if !ok {
		return Availability{
			Available: false,
			Message:   "Unable to verify delivery location. Please contact us.",
		}
	}
	distance = roundKm(distance)
	if distance > c.MaxDistanceKm {
		return Availability{
			Available:  false,
			DistanceKm: distance,
			Message:    fmt.Sprintf("Delivery not available. Your location is %.2fkm away. We deliver within %.0fkm.", distance, c.MaxDistanceKm),
		}
	}
	return Availability{
		Available:  true,
		DistanceKm: distance,
		Charge:     c.Pricing.Charge(decimal.Zero, distance),
		Message:    fmt.Sprintf("Delivery available! Your location is %.2fkm away.", distance),
	}
}

func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
