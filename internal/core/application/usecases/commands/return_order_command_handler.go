package commands

import (
	"context"
)

// ReturnOrderCommandHandler handles the business logic for order returns.
// Only delivered orders can be returned; the reason is stored on the order.
type ReturnOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReturnOrderCommandHandler creates a handler for order return operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewReturnOrderCommandHandler(uowFactory OrderUoWFactory) ReturnOrderCommandHandler {
	return ReturnOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order return command.
func (h *ReturnOrderCommandHandler) Handle(ctx context.Context, cmd ReturnOrderCommand) error {
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

	if err = aggregate.MarkReturned(cmd.Reason()); err != nil {
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
