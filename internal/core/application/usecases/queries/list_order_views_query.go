// Package queries provides read-side use cases for the patternbook showcase.
// It implements the resource-transform demo: pure projections from the Order
// entity into output-shaped view records, decoupled from the entity's
// internal shape.
package queries

import (
	"errors"
	"maps"
	"time"

	"patternbook/internal/core/domain/model/order"
	"patternbook/internal/pkg/guard"
)

var ErrListOrderViewsQueryIsNotConstructed = errors.New(
	"ListOrderViewsQuery must be created via NewListOrderViewsQuery constructor",
)

// ListOrderViewsQuery retrieves every stored order projected into its
// external view shape, wrapped in a collection with navigation links.
//
// Example:
//
//	query := NewListOrderViewsQuery()
//	handler := NewListOrderViewsQueryHandler(repo, time.Now)
//
//	collection, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list order views: %w", err)
//	}
//	fmt.Printf("Found %d orders\n", len(collection.Data))
type ListOrderViewsQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrderViewsQuery creates a query to retrieve all order views.
// This is a parameterless query.
func NewListOrderViewsQuery() ListOrderViewsQuery {
	return ListOrderViewsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOrderViewsQuery) Validate() error {
	return q.guard.Validate(ErrListOrderViewsQueryIsNotConstructed)
}

// OrderView is the external representation of an order. It projects selected
// entity fields into an output structure decoupled from the entity's
// internal shape, plus the timestamp the view was generated at.
type OrderView struct {
	ID          string    `json:"id"`
	Client      string    `json:"client"`
	Fulfilled   bool      `json:"fulfilled"`
	GeneratedAt time.Time `json:"generated_at"`
}

// OrderCollectionView wraps a list of order views with navigation metadata.
type OrderCollectionView struct {
	Data  []OrderView       `json:"data"`
	Links map[string]string `json:"links"`
}

// NewOrderView projects an order into its external view shape. The function
// is pure: it has no side effects, and the same order with the same supplied
// time always yields the same view. The current time is passed in explicitly
// for testability.
func NewOrderView(o *order.Order, now time.Time) OrderView {
	return OrderView{
		ID:          o.ID().String(),
		Client:      o.Client(),
		Fulfilled:   o.Fulfilled(),
		GeneratedAt: now,
	}
}

// NewOrderCollectionView wraps the given views with navigation links.
// The links map is copied, so callers may reuse theirs.
func NewOrderCollectionView(views []OrderView, links map[string]string) OrderCollectionView {
	owned := make(map[string]string, len(links))
	maps.Copy(owned, links)

	if views == nil {
		views = make([]OrderView, 0)
	}

	return OrderCollectionView{
		Data:  views,
		Links: owned,
	}
}
