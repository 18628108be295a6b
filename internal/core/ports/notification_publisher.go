package ports

import (
	"context"

	"storefront/internal/core/domain/model/notification"
)

// NotificationPublisher delivers queued notifications to the message
// broker. Implementations are fire-and-forget from the caller's point of
// view: a failed publish leaves the notification pending for the next relay
// run.
type NotificationPublisher interface {
	Publish(ctx context.Context, message *notification.Notification) error
}
