package order

import (
	"errors"
	"maps"

	"dario.cat/mergo"

	"patternbook/internal/core/domain/model/kernel"
	"patternbook/internal/pkg/errs"
	"patternbook/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder constructors. This ensures
	// all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrClientIsRequired is returned when attempting to create an order
	// without a client reference.
	ErrClientIsRequired = errs.NewValueIsRequiredError("client")
)

// Order represents a client order in the showcase domain. It is the shared
// entity every pattern demo operates on: the repository stores it, the
// resource transform projects it, and the demos seed it.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, immutable once assigned
//   - Must have a non-empty client reference
//   - The details payload is a free-form key-value mapping, never nil
//   - The fulfillment flag defaults to false on creation
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. Details are defensively copied on
// the way in and out, so holding an Order never aliases caller-owned maps.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// client references the client the order belongs to
	client string

	// details is the free-form payload attached to the order
	details map[string]string

	// fulfilled reports whether the order has been fulfilled
	fulfilled bool

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order instance with validation. This is the way new
// orders come into existence; the repository's create operation calls it
// after assigning a fresh identifier.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - client: Client reference (must be non-empty)
//   - details: Free-form payload (may be nil, stored as an empty map)
//
// Returns:
//   - *Order: The created order with fulfilled set to false
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), "Alice", map[string]string{"item": "widget"})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.UUID, client string, details map[string]string) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setClient(client),
	); err != nil {
		return nil, err
	}

	o.details = make(map[string]string, len(details))
	maps.Copy(o.details, details)

	return o, nil
}

// RestoreOrder reconstructs an Order from stored state, including the
// fulfillment flag. Storage adapters use it when returning records so that
// restored orders carry the same invariants as freshly created ones.
func RestoreOrder(id kernel.UUID, client string, details map[string]string, fulfilled bool) (*Order, error) {
	o, err := NewOrder(id, client, details)
	if err != nil {
		return nil, err
	}

	o.fulfilled = fulfilled
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// constructor. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || o.guard.Validate(ErrOrderIsNotConstructed) != nil {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Client returns the client reference the order belongs to.
func (o *Order) Client() string {
	return o.client
}

// Details returns a copy of the order's free-form payload. Mutating the
// returned map does not affect the order.
func (o *Order) Details() map[string]string {
	details := make(map[string]string, len(o.details))
	maps.Copy(details, o.details)
	return details
}

// Fulfilled reports whether the order has been fulfilled.
func (o *Order) Fulfilled() bool {
	return o.fulfilled
}

// Apply applies a partial change to the order. Fields the change does not
// carry are left untouched; details are merged with override semantics via
// MergeDetails. The repository's update operation delegates here.
func (o *Order) Apply(change OrderChange) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if change.Client != nil {
		if err := o.setClient(*change.Client); err != nil {
			return err
		}
	}

	if change.Details != nil {
		if err := o.MergeDetails(change.Details); err != nil {
			return err
		}
	}

	if change.Fulfilled != nil {
		o.fulfilled = *change.Fulfilled
	}

	return nil
}

// MergeDetails merges the given payload into the order's details.
// Keys present in patch overwrite existing values; keys absent from patch
// survive unchanged.
func (o *Order) MergeDetails(patch map[string]string) error {
	if err := o.Validate(); err != nil {
		return err
	}

	merged := o.Details()
	if err := mergo.Merge(&merged, patch, mergo.WithOverride); err != nil {
		return err
	}

	o.details = merged
	return nil
}

// Fulfill marks the order as fulfilled.
func (o *Order) Fulfill() error {
	if err := o.Validate(); err != nil {
		return err
	}

	o.fulfilled = true
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setClient validates and sets the order's client reference.
func (o *Order) setClient(client string) error {
	if client == "" {
		return ErrClientIsRequired
	}
	o.client = client
	return nil
}

// OrderChange describes a partial update to an order. Nil fields mean "leave
// unchanged"; a non-nil Details map is merged into the existing payload.
type OrderChange struct {
	Client    *string
	Details   map[string]string
	Fulfilled *bool
}
