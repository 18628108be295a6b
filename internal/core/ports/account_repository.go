package ports

import (
	"context"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for delivery-person
// account aggregates.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	// The account must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account aggregate.
	//
	// The update is guarded by the aggregate's version: if the stored row
	// has moved on since the aggregate was loaded, Update returns a
	// VersionIsInvalidError and persists nothing. This is what keeps two
	// concurrent withdrawal approvals from both draining the same balance.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account aggregate by the delivery person's
	// identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)
}
