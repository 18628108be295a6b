package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrApproveWithdrawalCommandIsNotConstructed = errors.New(
	"ApproveWithdrawalCommand must be created via NewApproveWithdrawalCommand constructor",
)

// ApproveWithdrawalCommand represents an administrator approving a pending
// withdrawal. The balance guard runs again here: approval debits the
// delivery person's balance and must not push it below zero.
type ApproveWithdrawalCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	transactionID kernel.UUID
	adminID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveWithdrawalCommand creates a command to approve a withdrawal.
// Validates that all identifiers are well-formed.
func NewApproveWithdrawalCommand(
	orderID kernel.UUID,
	transactionID kernel.UUID,
	adminID kernel.UUID,
) (ApproveWithdrawalCommand, error) {
	approveCommand := ApproveWithdrawalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		approveCommand.setOrderID(orderID),
		approveCommand.setTransactionID(transactionID),
		approveCommand.setAdminID(adminID),
	); err != nil {
		return ApproveWithdrawalCommand{}, err
	}

	return approveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveWithdrawalCommand) Validate() error {
	return c.guard.Validate(ErrApproveWithdrawalCommandIsNotConstructed)
}

// OrderID returns the order owning the transaction.
func (c ApproveWithdrawalCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TransactionID returns the ledger transaction being approved.
func (c ApproveWithdrawalCommand) TransactionID() kernel.UUID {
	return c.transactionID
}

// AdminID returns the deciding administrator.
func (c ApproveWithdrawalCommand) AdminID() kernel.UUID {
	return c.adminID
}

func (c *ApproveWithdrawalCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApproveWithdrawalCommand) setTransactionID(transactionID kernel.UUID) error {
	if err := transactionID.Validate(); err != nil {
		return err
	}

	c.transactionID = transactionID
	return nil
}

func (c *ApproveWithdrawalCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}
