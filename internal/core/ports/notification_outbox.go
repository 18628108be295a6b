package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/notification"
)

// NotificationOutboxRepository defines the persistence contract for the
// notification outbox.
//
// Enqueue runs inside the same unit of work as the order state change that
// produced the notification; GetPending and MarkSent are used by the relay
// job outside any business transaction.
type NotificationOutboxRepository interface {
	// Enqueue persists a pending notification.
	Enqueue(ctx context.Context, message *notification.Notification) error

	// GetPending retrieves up to limit notifications that have not been
	// delivered yet, oldest first.
	GetPending(ctx context.Context, limit int) ([]*notification.Notification, error)

	// MarkSent records the delivery time for a notification.
	MarkSent(ctx context.Context, id kernel.UUID, sentAt time.Time) error
}
