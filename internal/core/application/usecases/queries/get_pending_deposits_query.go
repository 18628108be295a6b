// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetPendingDepositsQueryIsNotConstructed = errors.New(
		"GetPendingDepositsQuery must be created via NewGetPendingDepositsQuery constructor",
	)
)

// GetPendingDepositsQuery retrieves all deposit requests awaiting an admin
// decision. Used by back-office screens that confirm collected cash.
//
// Example:
//
//	query := NewGetPendingDepositsQuery()
//	handler := NewGetPendingDepositsQueryHandler(db)
//
//	deposits, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending deposits: %w", err)
//	}
//
//	fmt.Printf("%d deposits awaiting confirmation\n", len(deposits))
type GetPendingDepositsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingDepositsQuery creates a query to retrieve pending deposits.
// This is a parameterless query that fetches every undecided deposit request.
func NewGetPendingDepositsQuery() GetPendingDepositsQuery {
	return GetPendingDepositsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingDepositsQueryIsNotConstructed if validation fails.
func (q GetPendingDepositsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingDepositsQueryIsNotConstructed)
}

// GetPendingDepositsQueryResponse represents a single pending deposit request.
type GetPendingDepositsQueryResponse struct {
	TransactionID    kernel.UUID
	OrderID          kernel.UUID
	DeliveryPersonID kernel.UUID
	Amount           int64
	CreatedAt        time.Time
}
