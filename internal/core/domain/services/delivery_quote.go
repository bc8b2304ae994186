package services

import (
	"errors"
	"fmt"
	"time"

	"patternbook/internal/pkg/errs"
	"patternbook/internal/pkg/guard"
)

// ErrDeliveryQuoteIsNotConstructed is returned when using an improperly
// initialized DeliveryQuote.
var ErrDeliveryQuoteIsNotConstructed = errors.New(
	"DeliveryQuote must be created via NewDeliveryQuote constructor")

// DeliveryQuote is the result value produced by a delivery strategy.
// It pairs a cost in cents with the estimated delivery duration. Quotes are
// immutable value objects.
type DeliveryQuote struct {
	// costCents is the delivery cost in cents
	costCents int

	// duration is the estimated time until the car arrives
	duration time.Duration

	// guard ensures the quote was properly constructed
	guard guard.ConstructorGuard
}

// NewDeliveryQuote creates a quote with validation. Cost must not be
// negative and the duration must be positive.
func NewDeliveryQuote(costCents int, duration time.Duration) (DeliveryQuote, error) {
	if costCents < 0 {
		return DeliveryQuote{}, errs.NewValueIsInvalidErrorWithCause(
			"cost", fmt.Errorf("%d cents is negative", costCents))
	}

	if duration <= 0 {
		return DeliveryQuote{}, errs.NewValueIsInvalidErrorWithCause(
			"duration", fmt.Errorf("%s is not positive", duration))
	}

	return DeliveryQuote{
		costCents: costCents,
		duration:  duration,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the quote was created through the constructor.
func (q DeliveryQuote) Validate() error {
	return q.guard.Validate(ErrDeliveryQuoteIsNotConstructed)
}

// CostCents returns the delivery cost in cents.
func (q DeliveryQuote) CostCents() int {
	return q.costCents
}

// Duration returns the estimated delivery duration.
func (q DeliveryQuote) Duration() time.Duration {
	return q.duration
}

// String returns a human-readable representation such as
// "$12.50 in 6h0m0s". This method implements the fmt.Stringer interface.
func (q DeliveryQuote) String() string {
	return fmt.Sprintf("$%d.%02d in %s", q.costCents/100, q.costCents%100, q.duration)
}
