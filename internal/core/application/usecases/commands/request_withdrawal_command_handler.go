package commands

import (
	"context"
	"time"

	"storefront/internal/pkg/errs"
)

// RequestWithdrawalCommandHandler handles the business logic for withdrawal
// requests. On top of the ownership rule enforced by the order aggregate,
// the delivery person's balance must cover the amount at request time. The
// same guard runs again at approval time, since the balance may move in
// between.
type RequestWithdrawalCommandHandler struct {
	uowFactory UoWFactory
}

// NewRequestWithdrawalCommandHandler creates a handler for withdrawal request operations.
// Requires a UoWFactory spanning orders and accounts.
func NewRequestWithdrawalCommandHandler(uowFactory UoWFactory) RequestWithdrawalCommandHandler {
	return RequestWithdrawalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the withdrawal request command.
func (h *RequestWithdrawalCommandHandler) Handle(ctx context.Context, cmd RequestWithdrawalCommand) error {
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

	acc, err := uow.AccountRepository().Get(ctx, cmd.DeliveryPersonID())
	if err != nil {
		return err
	}

	if !acc.CanWithdraw(cmd.Amount()) {
		return errs.NewInsufficientBalanceError(acc.Balance().Amount(), cmd.Amount().Amount())
	}

	if _, err = aggregate.RequestWithdrawal(cmd.DeliveryPersonID(), cmd.Amount(), time.Now()); err != nil {
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
