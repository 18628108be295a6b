package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// RejectWithdrawalCommandHandler handles the business logic for withdrawal
// rejection. The transaction must be a pending withdrawal; rejection is
// terminal and leaves the balance untouched.
type RejectWithdrawalCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectWithdrawalCommandHandler creates a handler for withdrawal rejection operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewRejectWithdrawalCommandHandler(uowFactory OrderUoWFactory) RejectWithdrawalCommandHandler {
	return RejectWithdrawalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the withdrawal rejection command.
func (h *RejectWithdrawalCommandHandler) Handle(ctx context.Context, cmd RejectWithdrawalCommand) error {
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

	transaction, err := aggregate.TransactionByID(cmd.TransactionID())
	if err != nil {
		return err
	}

	if transaction.Type() != order.TransactionTypeWithdrawal {
		return errs.NewValueIsInvalidError("transaction is not a withdrawal")
	}

	if err = transaction.Reject(cmd.AdminID(), cmd.Reason()); err != nil {
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
