// Package orderrepo provides the in-memory implementation of the order
// repository contract. It stands in for a database: records live in a map
// for the process lifetime and the mapping between domain entities and
// stored records mirrors what a persistence adapter would do.
package orderrepo

import (
	"maps"

	"patternbook/internal/core/domain/model/kernel"
	"patternbook/internal/core/domain/model/order"
)

// orderRecord is the stored representation of an order. Keeping a plain
// record decoupled from the entity means stored state can only be mutated
// through the repository operations.
type orderRecord struct {
	ID        string
	Client    string
	Details   map[string]string
	Fulfilled bool
}

// fromDomain converts an order entity to its stored representation.
// The details payload is copied so the record never aliases entity state.
func fromDomain(o *order.Order) orderRecord {
	details := make(map[string]string, len(o.Details()))
	maps.Copy(details, o.Details())

	return orderRecord{
		ID:        o.ID().String(),
		Client:    o.Client(),
		Details:   details,
		Fulfilled: o.Fulfilled(),
	}
}

// toDomain converts a stored record back to an order entity.
// Reconstruction goes through RestoreOrder so restored orders carry the same
// invariants as freshly created ones.
func toDomain(record orderRecord) (*order.Order, error) {
	id, err := kernel.UUIDFromString(record.ID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, record.Client, record.Details, record.Fulfilled)
}
