package service

import (
	"strings"

	"github.com/kirana-store/kirana/internal/config"
	"github.com/kirana-store/kirana/internal/delivery"

	"github.com/shopspring/decimal"
)

// DeliveryService answers serviceability questions and prices delivery
// for the checkout flow.
type DeliveryService struct {
	pricing delivery.Pricing
	checker *delivery.Checker
}

// NewDeliveryService builds the service from configuration. The store
// location anchors the zipcode resolver.
func NewDeliveryService(cfg *config.Config) *DeliveryService {
	pricing := delivery.Pricing{
		MinOrderAmount:        cfg.Delivery.MinOrderAmount,
		BaseCharge:            cfg.Delivery.BaseCharge,
		PerKmCharge:           cfg.Delivery.PerKmCharge,
		FreeDeliveryThreshold: cfg.Delivery.FreeDeliveryThreshold,
		FreeDistanceKm:        cfg.Delivery.FreeDistanceKm,
	}
	resolver := delivery.NewZipcodeResolver(delivery.Coordinates{
		Latitude:  cfg.Store.Latitude,
		Longitude: cfg.Store.Longitude,
	})
	checker := delivery.NewChecker(pricing, resolver)
	if cfg.Delivery.MaxDistanceKm > 0 {
		checker.MaxDistanceKm = cfg.Delivery.MaxDistanceKm
	}
	return &DeliveryService{pricing: pricing, checker: checker}
}

// Check reports whether an address zipcode can be delivered to.
func (s *DeliveryService) Check(zipCode string) delivery.Availability {
	return s.checker.Check(strings.TrimSpace(zipCode))
}

// Quote resolves the delivery distance and charge for an order amount.
// The amount must clear the delivery minimum and the address must be
// inside the service radius.
func (s *DeliveryService) Quote(orderAmount decimal.Decimal, zipCode string) (distanceKm float64, charge int64, err error) {
	if !s.pricing.Eligible(orderAmount) {
		return 0, 0, ErrDeliveryNotEligible
	}
	availability := s.checker.Check(strings.TrimSpace(zipCode))
	if !availability.Available {
		return 0, 0, ErrDeliveryUnavailable
	}
	return availability.DistanceKm, s.pricing.Charge(orderAmount, availability.DistanceKm), nil
}

// Pricing exposes the configured pricing table.
func (s *DeliveryService) Pricing() delivery.Pricing {
	return s.pricing
}
