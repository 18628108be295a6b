// Package ports defines repository interfaces for the order domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// with their complete state including the ledger transactions they own.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including any
	// transactions appended since it was loaded.
	//
	// The update is guarded by the aggregate's version: if the stored row
	// has moved on since the aggregate was loaded, Update returns a
	// VersionIsInvalidError and persists nothing.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its ledger transactions.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTransaction retrieves the order owning the given ledger
	// transaction. Used by the approval flows, which are addressed by
	// transaction ID.
	GetByTransaction(ctx context.Context, transactionID kernel.UUID) (*order.Order, error)
}
