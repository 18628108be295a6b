package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUndeliveredOrdersQueryHandler retrieves in-flight orders from the database.
// Filters out delivered and returned orders to show the active pipeline.
type GetUndeliveredOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUndeliveredOrdersQueryHandler creates a handler for in-flight order queries.
// Requires a GORM database connection for query execution.
func NewGetUndeliveredOrdersQueryHandler(db *gorm.DB) GetUndeliveredOrdersQueryHandler {
	return GetUndeliveredOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all undelivered orders.
// Results are sorted by order ID for consistent output.
func (h GetUndeliveredOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUndeliveredOrdersQuery,
) ([]GetUndeliveredOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUndeliveredOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			delivery_person_id,
			status
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY id
	`, order.Delivered, order.Returned).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, userID uuid.UUID
		var deliveryPersonID uuid.NullUUID
		var status int

		err = rows.Scan(
			&id,
			&userID,
			&deliveryPersonID,
			&status,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		customerID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}

		orderStatus := order.Status(status)
		resp := GetUndeliveredOrdersQueryResponse{
			ID:           orderID,
			UserID:       customerID,
			Status:       orderStatus,
			DisplayLabel: orderStatus.DisplayLabel(),
		}

		if deliveryPersonID.Valid {
			assigneeID, idErr := kernel.UUIDFromBytes(deliveryPersonID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.DeliveryPersonID = &assigneeID
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
