package queries

import (
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetOrderStatusCountsQueryIsNotConstructed = errors.New(
		"GetOrderStatusCountsQuery must be created via NewGetOrderStatusCountsQuery constructor",
	)
)

// GetOrderStatusCountsQuery retrieves the number of orders in each lifecycle
// status. Powers the operations dashboard summary tiles.
type GetOrderStatusCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatusCountsQuery creates a query to count orders per status.
func NewGetOrderStatusCountsQuery() GetOrderStatusCountsQuery {
	return GetOrderStatusCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatusCountsQueryIsNotConstructed if validation fails.
func (q GetOrderStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusCountsQueryIsNotConstructed)
}

// GetOrderStatusCountsQueryResponse represents the order count for one
// status, alongside how many of those orders have settled payment.
type GetOrderStatusCountsQueryResponse struct {
	Status order.Status
	Count  int64
	Paid   int64
}
