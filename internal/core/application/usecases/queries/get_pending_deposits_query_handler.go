package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingDepositsQueryHandler retrieves undecided deposit requests from
// the database, newest first.
type GetPendingDepositsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingDepositsQueryHandler creates a handler for pending deposit queries.
// Requires a GORM database connection for query execution.
func NewGetPendingDepositsQueryHandler(db *gorm.DB) GetPendingDepositsQueryHandler {
	return GetPendingDepositsQueryHandler{db: db}
}

// Handle executes the query to retrieve all pending deposit requests.
func (h GetPendingDepositsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingDepositsQuery,
) ([]GetPendingDepositsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deposits := make([]GetPendingDepositsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			delivery_person_id,
			amount,
			created_at
		FROM transactions
		WHERE type = ? AND status = ?
		ORDER BY created_at DESC
	`, order.TransactionTypeDeposit, order.TransactionStatusPending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, orderID, deliveryPersonID uuid.UUID
		var amount int64
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&orderID,
			&deliveryPersonID,
			&amount,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		resp, respErr := pendingTransactionResponse(id, orderID, deliveryPersonID, amount, createdAt)
		if respErr != nil {
			return nil, respErr
		}
		deposits = append(deposits, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deposits, nil
}

// pendingTransactionResponse maps scanned columns into the shared pending
// transaction shape used by both deposit and withdrawal queries.
func pendingTransactionResponse(
	id uuid.UUID,
	orderID uuid.UUID,
	deliveryPersonID uuid.UUID,
	amount int64,
	createdAt time.Time,
) (GetPendingDepositsQueryResponse, error) {
	transactionID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetPendingDepositsQueryResponse{}, err
	}

	owningOrderID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return GetPendingDepositsQueryResponse{}, err
	}

	requesterID, err := kernel.UUIDFromBytes(deliveryPersonID[:])
	if err != nil {
		return GetPendingDepositsQueryResponse{}, err
	}

	return GetPendingDepositsQueryResponse{
		TransactionID:    transactionID,
		OrderID:          owningOrderID,
		DeliveryPersonID: requesterID,
		Amount:           amount,
		CreatedAt:        createdAt,
	}, nil
}
