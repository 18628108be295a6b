package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/notification"
)

// CompleteOrderCommandHandler handles the business logic for delivery
// completion. The order must have been accepted; completion records the
// delivery time, settles cash-on-delivery payments, and queues a customer
// notification in the same transaction.
type CompleteOrderCommandHandler struct {
	uowFactory NotifyUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for delivery completion operations.
// Requires a NotifyUoWFactory so the outbox row commits with the order.
func NewCompleteOrderCommandHandler(uowFactory NotifyUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery completion command.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Complete(time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	message, err := notification.NewNotification(
		aggregate.ID(), aggregate.User(), notification.EventOrderDelivered, time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.NotificationOutboxRepository().Enqueue(ctx, message); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
