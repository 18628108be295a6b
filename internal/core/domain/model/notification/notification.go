// Package notification contains the outbox message written alongside order
// state changes.
//
// Notifications are queued in the same transaction as the state change that
// produced them and delivered asynchronously by a relay job, so a broker
// outage never blocks or rolls back an order operation.
package notification

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned when a Notification was not
// created through a constructor.
var ErrNotificationIsNotConstructed = errors.New("notification must be created via NewNotification or RestoreNotification")

// Event identifies what happened to the order.
type Event string

const (
	EventOrderAccepted  Event = "order.accepted"
	EventOrderDelivered Event = "order.delivered"
)

// Validate checks that the event is one of the known values.
func (e Event) Validate() error {
	if e != EventOrderAccepted && e != EventOrderDelivered {
		return errs.NewValueIsInvalidError("notification event")
	}
	return nil
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return string(e)
}

// Notification is an outbox row: one pending message for the order's owner.
type Notification struct {
	id        kernel.UUID
	orderID   kernel.UUID
	userID    kernel.UUID
	event     Event
	createdAt time.Time
	sentAt    *time.Time

	isConstructed bool
}

// NewNotification creates a pending notification for the given order event.
func NewNotification(orderID kernel.UUID, userID kernel.UUID, event Event, now time.Time) (*Notification, error) {
	if err := errors.Join(
		orderID.Validate(),
		userID.Validate(),
		event.Validate(),
	); err != nil {
		return nil, err
	}

	return &Notification{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		userID:        userID,
		event:         event,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreNotification reconstructs a notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	orderID kernel.UUID,
	userID kernel.UUID,
	event Event,
	createdAt time.Time,
	sentAt *time.Time,
) (*Notification, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		userID.Validate(),
		event.Validate(),
	); err != nil {
		return nil, err
	}

	return &Notification{
		id:            id,
		orderID:       orderID,
		userID:        userID,
		event:         event,
		createdAt:     createdAt,
		sentAt:        sentAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Notification was created through a constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// Order returns the order this notification is about.
func (n *Notification) Order() kernel.UUID {
	return n.orderID
}

// User returns the recipient, the order's owning customer.
func (n *Notification) User() kernel.UUID {
	return n.userID
}

// Event returns what happened to the order.
func (n *Notification) Event() Event {
	return n.event
}

// CreatedAt returns when the notification was queued.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// SentAt returns when the relay delivered the notification, or nil while it
// is still pending.
func (n *Notification) SentAt() *time.Time {
	return n.sentAt
}

// IsSent reports whether the relay has already delivered the notification.
func (n *Notification) IsSent() bool {
	return n.sentAt != nil
}

// MarkSent records the delivery time. Marking an already sent notification
// again is an error.
func (n *Notification) MarkSent(now time.Time) error {
	if n.IsSent() {
		return errs.NewInvalidTransitionError("mark notification sent", "sent")
	}

	n.sentAt = &now
	return nil
}
