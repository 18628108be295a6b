package commands

import (
	"context"
)

// AssignOrderCommandHandler handles the business logic for order assignment.
// Packs the order if needed and records the delivery person, replacing any
// previous assignment.
type AssignOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignOrderCommandHandler creates a handler for order assignment operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewAssignOrderCommandHandler(uowFactory OrderUoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order assignment command.
// Loads the order, applies the assignment, and persists the new state.
// Uses transaction to ensure the change is properly persisted or rolled back on error.
func (h *AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
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

	if err = aggregate.Assign(cmd.DeliveryPersonID()); err != nil {
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
