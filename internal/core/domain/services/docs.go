// Package services provides domain services for the patternbook showcase.
// It implements the delivery strategy demo: interchangeable quote algorithms
// invoked through a common contract, selected by the caller at invocation
// time.
//
// The package includes:
//   - DeliveryStrategy: The contract every delivery variant implements
//   - ShipDelivery / AirDelivery: Concrete, stateless strategy variants
//   - CarDelivery: The context that delegates quoting to a strategy
//   - DeliveryQuote: The cost-and-duration result value
//
// The context never computes a quote itself; substituting the strategy
// changes the result without modifying the context's code.
package services
