package commands

import (
	"context"

	"storefront/internal/pkg/errs"
)

// RejectOrderCommandHandler handles the business logic for order rejection.
// Only the assigned delivery person may reject, and only before acceptance.
// The assignment is cleared; the order itself stays packed.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectOrderCommandHandler creates a handler for order rejection operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order rejection command.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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
			"reject order "+aggregate.ID().String(),
		)
	}

	if err = aggregate.Reject(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
