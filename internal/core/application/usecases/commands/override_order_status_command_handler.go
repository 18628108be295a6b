package commands

import (
	"context"
)

// OverrideOrderStatusCommandHandler handles the administrative status
// override. The target status is applied without transition guards; see
// Order.ForceStatus for the exact semantics.
type OverrideOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewOverrideOrderStatusCommandHandler creates a handler for status override operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewOverrideOrderStatusCommandHandler(uowFactory OrderUoWFactory) OverrideOrderStatusCommandHandler {
	return OverrideOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status override command.
func (h *OverrideOrderStatusCommandHandler) Handle(ctx context.Context, cmd OverrideOrderStatusCommand) error {
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

	if err = aggregate.ForceStatus(cmd.Target()); err != nil {
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
