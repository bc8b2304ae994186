package queries

import (
	"context"
	"fmt"
	"time"

	"patternbook/internal/core/ports"
)

// ListOrderViewsQueryHandler projects all stored orders into the collection
// view. The repository and the clock are injected explicitly: the handler
// never reads ambient state, which keeps the projection deterministic in
// tests.
//
// Example:
//
//	handler := NewListOrderViewsQueryHandler(repo, time.Now)
//	collection, err := handler.Handle(ctx, NewListOrderViewsQuery())
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type ListOrderViewsQueryHandler struct {
	repo ports.OrderRepository
	now  func() time.Time
}

// NewListOrderViewsQueryHandler creates a handler for order view queries.
// Requires an order repository and a clock function (typically time.Now).
func NewListOrderViewsQueryHandler(repo ports.OrderRepository, now func() time.Time) ListOrderViewsQueryHandler {
	return ListOrderViewsQueryHandler{
		repo: repo,
		now:  now,
	}
}

// Handle executes the query: every stored order is projected through
// NewOrderView at a single generation timestamp, and the result is wrapped
// with self/first navigation links.
func (h ListOrderViewsQueryHandler) Handle(
	ctx context.Context,
	query ListOrderViewsQuery,
) (OrderCollectionView, error) {
	if err := query.Validate(); err != nil {
		return OrderCollectionView{}, err
	}

	orders, err := h.repo.ListAll(ctx)
	if err != nil {
		return OrderCollectionView{}, err
	}

	generatedAt := h.now()
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o, generatedAt))
	}

	links := map[string]string{
		"self":  "/orders?page=1",
		"first": "/orders?page=1",
		"last":  fmt.Sprintf("/orders?page=%d", lastPage(len(views))),
	}

	return NewOrderCollectionView(views, links), nil
}

// viewsPerPage sizes the pagination links of the collection view. The whole
// collection always fits one page in the demos; the links exist to show the
// wrapper's shape.
const viewsPerPage = 25

func lastPage(total int) int {
	if total <= viewsPerPage {
		return 1
	}
	return (total + viewsPerPage - 1) / viewsPerPage
}
