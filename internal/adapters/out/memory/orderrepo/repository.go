package orderrepo

import (
	"context"
	"sync"

	"patternbook/internal/core/domain/model/kernel"
	"patternbook/internal/core/domain/model/order"
	"patternbook/internal/pkg/errs"
)

// Repository implements ports.OrderRepository over an in-memory map.
// A mutex keeps the store consistent when demos and tests share it; the
// domain itself assumes a single writer.
type Repository struct {
	mu      sync.RWMutex
	records map[string]orderRecord
}

// NewRepository creates an empty in-memory order repository.
func NewRepository() *Repository {
	return &Repository{
		records: make(map[string]orderRecord),
	}
}

// ListAll retrieves all stored orders in map iteration order.
func (r *Repository) ListAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Order, 0, len(r.records))
	for _, record := range r.records {
		o, err := toDomain(record)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Get retrieves an order by ID.
// Returns errs.ObjectNotFoundError when the ID is absent.
func (r *Repository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return toDomain(record)
}

// Create assigns a fresh identifier, stores and returns the new order.
// The returned order carries a false fulfillment flag.
func (r *Repository) Create(_ context.Context, client string, details map[string]string) (*order.Order, error) {
	o, err := order.NewOrder(kernel.NewUUID(), client, details)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[o.ID().String()] = fromDomain(o)
	return o, nil
}

// Update applies a partial change to an existing order and returns the
// updated record. Details are merged with override semantics; fields the
// change does not carry are unchanged. Returns errs.ObjectNotFoundError when
// the ID is absent.
func (r *Repository) Update(_ context.Context, id kernel.UUID, change order.OrderChange) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	o, err := toDomain(record)
	if err != nil {
		return nil, err
	}

	if err = o.Apply(change); err != nil {
		return nil, err
	}

	r.records[id.String()] = fromDomain(o)
	return o, nil
}

// Delete removes an order from the store.
// Returns errs.ObjectNotFoundError when the ID is absent.
func (r *Repository) Delete(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id.String()]; !ok {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	delete(r.records, id.String())
	return nil
}

// GetFulfilled retrieves the subset of orders whose fulfillment flag is true.
func (r *Repository) GetFulfilled(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Order, 0)
	for _, record := range r.records {
		if !record.Fulfilled {
			continue
		}

		o, err := toDomain(record)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
