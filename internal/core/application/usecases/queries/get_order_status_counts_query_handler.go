package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatusCountsQueryHandler counts orders per lifecycle status.
type GetOrderStatusCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusCountsQueryHandler creates a handler for status count queries.
// Requires a GORM database connection for query execution.
func NewGetOrderStatusCountsQueryHandler(db *gorm.DB) GetOrderStatusCountsQueryHandler {
	return GetOrderStatusCountsQueryHandler{db: db}
}

// Handle executes the query to count orders grouped by status.
// Statuses with no orders are omitted from the result.
func (h GetOrderStatusCountsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusCountsQuery,
) ([]GetOrderStatusCountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make([]GetOrderStatusCountsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*),
			COUNT(*) FILTER (WHERE is_paid)
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status int
		var count, paid int64

		err = rows.Scan(
			&status,
			&count,
			&paid,
		)
		if err != nil {
			return nil, err
		}

		counts = append(counts, GetOrderStatusCountsQueryResponse{
			Status: order.Status(status),
			Count:  count,
			Paid:   paid,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
