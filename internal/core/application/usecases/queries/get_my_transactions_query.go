package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetMyTransactionsQueryIsNotConstructed = errors.New(
		"GetMyTransactionsQuery must be created via NewGetMyTransactionsQuery constructor",
	)
)

// GetMyTransactionsQuery retrieves the full ledger history of one delivery
// person: pending, approved and rejected transactions alike.
//
// Example:
//
//	query, err := NewGetMyTransactionsQuery(deliveryPersonID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetMyTransactionsQueryHandler(db)
//
//	history, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get transaction history: %w", err)
//	}
type GetMyTransactionsQuery struct {
	deliveryPersonID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMyTransactionsQuery creates a query scoped to one delivery person.
func NewGetMyTransactionsQuery(deliveryPersonID kernel.UUID) (GetMyTransactionsQuery, error) {
	if err := deliveryPersonID.Validate(); err != nil {
		return GetMyTransactionsQuery{}, err
	}

	return GetMyTransactionsQuery{
		deliveryPersonID: deliveryPersonID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMyTransactionsQueryIsNotConstructed if validation fails.
func (q GetMyTransactionsQuery) Validate() error {
	return q.guard.Validate(ErrGetMyTransactionsQueryIsNotConstructed)
}

// DeliveryPersonID returns the identifier the history is scoped to.
func (q GetMyTransactionsQuery) DeliveryPersonID() kernel.UUID {
	return q.deliveryPersonID
}

// GetMyTransactionsQueryResponse represents one ledger transaction in the
// delivery person's history.
type GetMyTransactionsQueryResponse struct {
	TransactionID   kernel.UUID
	OrderID         kernel.UUID
	Type            string
	Amount          int64
	Status          string
	RejectionReason string
	CreatedAt       time.Time
}
