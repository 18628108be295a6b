package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetPendingWithdrawalsQueryIsNotConstructed = errors.New(
		"GetPendingWithdrawalsQuery must be created via NewGetPendingWithdrawalsQuery constructor",
	)
)

// GetPendingWithdrawalsQuery retrieves all withdrawal requests awaiting an
// admin decision.
type GetPendingWithdrawalsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingWithdrawalsQuery creates a query to retrieve pending withdrawals.
// This is a parameterless query that fetches every undecided withdrawal request.
func NewGetPendingWithdrawalsQuery() GetPendingWithdrawalsQuery {
	return GetPendingWithdrawalsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingWithdrawalsQueryIsNotConstructed if validation fails.
func (q GetPendingWithdrawalsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingWithdrawalsQueryIsNotConstructed)
}

// GetPendingWithdrawalsQueryResponse represents a single pending withdrawal request.
type GetPendingWithdrawalsQueryResponse struct {
	TransactionID    kernel.UUID
	OrderID          kernel.UUID
	DeliveryPersonID kernel.UUID
	Amount           int64
	CreatedAt        time.Time
}
