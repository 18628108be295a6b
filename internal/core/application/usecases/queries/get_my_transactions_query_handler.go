package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMyTransactionsQueryHandler retrieves a delivery person's ledger history
// from the database, newest first.
type GetMyTransactionsQueryHandler struct {
	db *gorm.DB
}

// NewGetMyTransactionsQueryHandler creates a handler for transaction history queries.
// Requires a GORM database connection for query execution.
func NewGetMyTransactionsQueryHandler(db *gorm.DB) GetMyTransactionsQueryHandler {
	return GetMyTransactionsQueryHandler{db: db}
}

// Handle executes the query to retrieve the delivery person's transactions.
func (h GetMyTransactionsQueryHandler) Handle(
	ctx context.Context,
	query GetMyTransactionsQuery,
) ([]GetMyTransactionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history := make([]GetMyTransactionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			type,
			amount,
			status,
			rejection_reason,
			created_at
		FROM transactions
		WHERE delivery_person_id = ?
		ORDER BY created_at DESC
	`, query.DeliveryPersonID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, orderID uuid.UUID
		var transactionType, status, rejectionReason string
		var amount int64
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&orderID,
			&transactionType,
			&amount,
			&status,
			&rejectionReason,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		transactionID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		owningOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		history = append(history, GetMyTransactionsQueryResponse{
			TransactionID:   transactionID,
			OrderID:         owningOrderID,
			Type:            transactionType,
			Amount:          amount,
			Status:          status,
			RejectionReason: rejectionReason,
			CreatedAt:       createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
