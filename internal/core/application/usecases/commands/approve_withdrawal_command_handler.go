package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// ApproveWithdrawalCommandHandler handles the business logic for withdrawal
// approval. The transaction must be a pending withdrawal and the balance
// must still cover the amount; approval debits the balance in the same
// database transaction. Of two concurrent approvals of the same
// transaction, one commits and the other fails on the pending-status guard
// or the version check.
type ApproveWithdrawalCommandHandler struct {
	uowFactory UoWFactory
}

// NewApproveWithdrawalCommandHandler creates a handler for withdrawal approval operations.
// Requires a UoWFactory spanning orders and accounts.
func NewApproveWithdrawalCommandHandler(uowFactory UoWFactory) ApproveWithdrawalCommandHandler {
	return ApproveWithdrawalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the withdrawal approval command.
func (h *ApproveWithdrawalCommandHandler) Handle(ctx context.Context, cmd ApproveWithdrawalCommand) error {
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

	if err = transaction.Approve(cmd.AdminID()); err != nil {
		return err
	}

	accountRepo := uow.AccountRepository()
	acc, err := accountRepo.Get(ctx, transaction.DeliveryPerson())
	if err != nil {
		return err
	}

	if err = acc.Debit(transaction.Amount()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, acc); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
