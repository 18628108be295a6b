package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// ConfirmDepositCommandHandler handles the business logic for deposit
// confirmation. The transaction must be a pending deposit; confirmation
// approves it and credits the delivery person's balance in one database
// transaction, so the ledger and the balance never diverge.
type ConfirmDepositCommandHandler struct {
	uowFactory UoWFactory
}

// NewConfirmDepositCommandHandler creates a handler for deposit confirmation operations.
// Requires a UoWFactory spanning orders and accounts.
func NewConfirmDepositCommandHandler(uowFactory UoWFactory) ConfirmDepositCommandHandler {
	return ConfirmDepositCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deposit confirmation command.
func (h *ConfirmDepositCommandHandler) Handle(ctx context.Context, cmd ConfirmDepositCommand) error {
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

	if transaction.Type() != order.TransactionTypeDeposit {
		return errs.NewValueIsInvalidError("transaction is not a deposit")
	}

	if err = transaction.Approve(cmd.AdminID()); err != nil {
		return err
	}

	accountRepo := uow.AccountRepository()
	acc, err := accountRepo.Get(ctx, transaction.DeliveryPerson())
	if err != nil {
		return err
	}

	if err = acc.Credit(transaction.Amount()); err != nil {
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
