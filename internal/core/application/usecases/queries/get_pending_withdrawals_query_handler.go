package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingWithdrawalsQueryHandler retrieves undecided withdrawal requests
// from the database, newest first.
type GetPendingWithdrawalsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingWithdrawalsQueryHandler creates a handler for pending withdrawal queries.
// Requires a GORM database connection for query execution.
func NewGetPendingWithdrawalsQueryHandler(db *gorm.DB) GetPendingWithdrawalsQueryHandler {
	return GetPendingWithdrawalsQueryHandler{db: db}
}

// Handle executes the query to retrieve all pending withdrawal requests.
func (h GetPendingWithdrawalsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingWithdrawalsQuery,
) ([]GetPendingWithdrawalsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	withdrawals := make([]GetPendingWithdrawalsQueryResponse, 0)

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
	`, order.TransactionTypeWithdrawal, order.TransactionStatusPending).Rows()
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
		withdrawals = append(withdrawals, GetPendingWithdrawalsQueryResponse(resp))
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return withdrawals, nil
}
