package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrConfirmDepositCommandIsNotConstructed = errors.New(
	"ConfirmDepositCommand must be created via NewConfirmDepositCommand constructor",
)

// ConfirmDepositCommand represents an administrator confirming a pending
// deposit. On confirmation the transaction becomes approved and the
// delivery person's balance is credited, atomically.
type ConfirmDepositCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	transactionID kernel.UUID
	adminID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmDepositCommand creates a command to confirm a deposit.
// Validates that all identifiers are well-formed.
func NewConfirmDepositCommand(
	orderID kernel.UUID,
	transactionID kernel.UUID,
	adminID kernel.UUID,
) (ConfirmDepositCommand, error) {
	confirmCommand := ConfirmDepositCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		confirmCommand.setOrderID(orderID),
		confirmCommand.setTransactionID(transactionID),
		confirmCommand.setAdminID(adminID),
	); err != nil {
		return ConfirmDepositCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDepositCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDepositCommandIsNotConstructed)
}

// OrderID returns the order owning the transaction.
func (c ConfirmDepositCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TransactionID returns the ledger transaction being confirmed.
func (c ConfirmDepositCommand) TransactionID() kernel.UUID {
	return c.transactionID
}

// AdminID returns the deciding administrator.
func (c ConfirmDepositCommand) AdminID() kernel.UUID {
	return c.adminID
}

func (c *ConfirmDepositCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmDepositCommand) setTransactionID(transactionID kernel.UUID) error {
	if err := transactionID.Validate(); err != nil {
		return err
	}

	c.transactionID = transactionID
	return nil
}

func (c *ConfirmDepositCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}
