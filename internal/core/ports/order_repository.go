package ports

import (
	"context"

	"patternbook/internal/core/domain/model/kernel"
	"patternbook/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for orders. Callers depend
// only on this contract; the backing store (in-memory map, file, real
// database) is swappable without touching callers.
//
// Lookup, update and delete on an absent identifier fail with
// errs.ObjectNotFoundError. No ordering or pagination guarantees are made.
type OrderRepository interface {
	// ListAll retrieves all stored orders in implementation-defined order.
	ListAll(ctx context.Context) ([]*order.Order, error)

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Create assigns a new unique identifier, stores and returns the record.
	// The fulfillment flag of a freshly created order is false.
	Create(ctx context.Context, client string, details map[string]string) (*order.Order, error)

	// Update applies a partial change to an existing order and returns the
	// updated record. Details carried by the change are merged into the
	// stored payload with override semantics; fields the change does not
	// carry are unchanged.
	Update(ctx context.Context, id kernel.UUID, change order.OrderChange) (*order.Order, error)

	// Delete removes an order from the store.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetFulfilled retrieves the subset of orders whose fulfillment flag is
	// true.
	GetFulfilled(ctx context.Context) ([]*order.Order, error)
}
