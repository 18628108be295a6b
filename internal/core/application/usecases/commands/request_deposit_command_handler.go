package commands

import (
	"context"
	"time"
)

// RequestDepositCommandHandler handles the business logic for deposit
// requests. Ownership is enforced by the order aggregate: only its assigned
// delivery person may append ledger transactions.
type RequestDepositCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRequestDepositCommandHandler creates a handler for deposit request operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewRequestDepositCommandHandler(uowFactory OrderUoWFactory) RequestDepositCommandHandler {
	return RequestDepositCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deposit request command.
func (h *RequestDepositCommandHandler) Handle(ctx context.Context, cmd RequestDepositCommand) error {
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

	if _, err = aggregate.RequestDeposit(cmd.DeliveryPersonID(), cmd.Amount(), time.Now()); err != nil {
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
