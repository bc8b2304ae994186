package services

import (
	"errors"

	"patternbook/internal/core/domain/model/car"
	"patternbook/internal/core/domain/model/kernel"
)

// ErrStrategyIsRequired is returned when CarDelivery is invoked without a
// strategy.
var ErrStrategyIsRequired = errors.New("delivery strategy is required")

// CarDelivery is the strategy context: it carries the car being delivered
// and delegates quoting to whichever DeliveryStrategy the caller supplies.
// The strategy is selected per call, not baked into the context, so the same
// CarDelivery can be quoted by ship and by air without any modification.
//
// Example usage:
//
//	delivery, _ := services.NewCarDelivery(c)
//	ship, _ := services.NewShipDelivery(depot)
//	air, _ := services.NewAirDelivery(depot)
//
//	byShip, _ := delivery.DeliverCar(ship, address)
//	byAir, _ := delivery.DeliverCar(air, address)
//	// byShip and byAir are each variant's own quote
type CarDelivery struct {
	car car.Car
}

// NewCarDelivery creates a delivery context for the given car.
// The car must have been produced by the factory.
func NewCarDelivery(c car.Car) (CarDelivery, error) {
	if err := c.Validate(); err != nil {
		return CarDelivery{}, err
	}

	return CarDelivery{car: c}, nil
}

// Car returns the car being delivered.
func (d CarDelivery) Car() car.Car {
	return d.car
}

// DeliverCar delegates quoting to the supplied strategy. The context
// validates its inputs and never computes a quote itself, so substituting
// the strategy changes the result.
//
// Returns:
//   - DeliveryQuote: The quote produced by the strategy
//   - error: ErrStrategyIsRequired if strategy is nil, or the strategy's own
//     failure
func (d CarDelivery) DeliverCar(strategy DeliveryStrategy, address kernel.Address) (DeliveryQuote, error) {
	if strategy == nil {
		return DeliveryQuote{}, ErrStrategyIsRequired
	}

	if err := address.Validate(); err != nil {
		return DeliveryQuote{}, err
	}

	return strategy.Deliver(address)
}
