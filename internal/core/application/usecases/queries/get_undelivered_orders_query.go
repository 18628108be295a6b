package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetUndeliveredOrdersQueryIsNotConstructed = errors.New(
		"GetUndeliveredOrdersQuery must be created via NewGetUndeliveredOrdersQuery constructor",
	)
)

// GetUndeliveredOrdersQuery retrieves all orders that have not reached a
// terminal state yet. Used by fulfilment dashboards to watch the active
// pipeline.
type GetUndeliveredOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUndeliveredOrdersQuery creates a query to retrieve in-flight orders.
// This is a parameterless query that fetches every order not yet delivered
// or returned.
func NewGetUndeliveredOrdersQuery() GetUndeliveredOrdersQuery {
	return GetUndeliveredOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUndeliveredOrdersQueryIsNotConstructed if validation fails.
func (q GetUndeliveredOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUndeliveredOrdersQueryIsNotConstructed)
}

// GetUndeliveredOrdersQueryResponse represents one in-flight order.
// DisplayLabel is the customer-facing rendering of the raw status.
type GetUndeliveredOrdersQueryResponse struct {
	ID               kernel.UUID
	UserID           kernel.UUID
	DeliveryPersonID *kernel.UUID
	Status           order.Status
	DisplayLabel     string
}
