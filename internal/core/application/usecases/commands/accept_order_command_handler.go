package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/notification"
	"storefront/internal/pkg/errs"
)

// AcceptOrderCommandHandler handles the business logic for order acceptance.
// Only the assigned delivery person may accept, and only while the order is
// packed and not yet accepted. A customer notification is queued in the
// same transaction.
type AcceptOrderCommandHandler struct {
	uowFactory NotifyUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance operations.
// Requires a NotifyUoWFactory so the outbox row commits with the order.
func NewAcceptOrderCommandHandler(uowFactory NotifyUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order acceptance command.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	if aggregate.DeliveryPerson() == nil || !aggregate.DeliveryPerson().IsEqual(cmd.DeliveryPersonID()) {
		return errs.NewNotAuthorizedError(
			cmd.DeliveryPersonID().String(),
			"accept order "+aggregate.ID().String(),
		)
	}

	if err = aggregate.Accept(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	message, err := notification.NewNotification(
		aggregate.ID(), aggregate.User(), notification.EventOrderAccepted, time.Now(),
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
