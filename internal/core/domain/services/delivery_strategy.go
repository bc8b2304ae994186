package services

import (
	"time"

	"patternbook/internal/core/domain/model/kernel"
)

// DeliveryStrategy is the contract every delivery variant implements.
// A strategy turns a destination address into a cost-and-duration quote.
// Variants are interchangeable: callers pick one at invocation time and the
// CarDelivery context delegates without knowing which variant it holds.
//
// Each variant computes its quote independently; there is no shared state
// between variants.
type DeliveryStrategy interface {
	// Deliver computes the quote for delivering to the given address.
	Deliver(address kernel.Address) (DeliveryQuote, error)
}

// Tariff constants for the ship variant: cheap and slow, both cost and
// duration scale with the grid distance from the depot.
const (
	shipBaseCostCents    = 500
	shipCostPerCellCents = 25
	shipTimePerCell      = 12 * time.Hour
)

// Tariff constants for the air variant: a flat premium up front, then a
// small per-cell surcharge and a fast per-cell time.
const (
	airBaseCostCents    = 5000
	airCostPerCellCents = 100
	airBaseTime         = 2 * time.Hour
	airTimePerCell      = 10 * time.Minute
)

// ShipDelivery quotes sea freight from the depot. It is a stateless
// strategy: a single instance may serve any number of callers.
type ShipDelivery struct {
	depot kernel.Address
}

// NewShipDelivery creates a ship delivery strategy operating from the given
// depot.
func NewShipDelivery(depot kernel.Address) (ShipDelivery, error) {
	if err := depot.Validate(); err != nil {
		return ShipDelivery{}, err
	}

	return ShipDelivery{depot: depot}, nil
}

// Deliver computes the sea freight quote for the given address. Cost and
// duration both grow linearly with the Manhattan distance from the depot;
// even a zero-distance delivery takes one cell's worth of time.
func (s ShipDelivery) Deliver(address kernel.Address) (DeliveryQuote, error) {
	distance, err := s.depot.Distance(address)
	if err != nil {
		return DeliveryQuote{}, err
	}

	cost := shipBaseCostCents + distance*shipCostPerCellCents
	duration := time.Duration(max(distance, 1)) * shipTimePerCell

	return NewDeliveryQuote(cost, duration)
}

// AirDelivery quotes air freight from the depot: expensive and fast.
// Like ShipDelivery it is stateless and safe to share.
type AirDelivery struct {
	depot kernel.Address
}

// NewAirDelivery creates an air delivery strategy operating from the given
// depot.
func NewAirDelivery(depot kernel.Address) (AirDelivery, error) {
	if err := depot.Validate(); err != nil {
		return AirDelivery{}, err
	}

	return AirDelivery{depot: depot}, nil
}

// Deliver computes the air freight quote for the given address. The premium
// dominates the cost; the duration is a fixed handling time plus a small
// per-cell flight time.
func (a AirDelivery) Deliver(address kernel.Address) (DeliveryQuote, error) {
	distance, err := a.depot.Distance(address)
	if err != nil {
		return DeliveryQuote{}, err
	}

	cost := airBaseCostCents + distance*airCostPerCellCents
	duration := airBaseTime + time.Duration(distance)*airTimePerCell

	return NewDeliveryQuote(cost, duration)
}
