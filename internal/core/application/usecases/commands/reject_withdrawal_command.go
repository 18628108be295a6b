package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrRejectWithdrawalCommandIsNotConstructed = errors.New(
	"RejectWithdrawalCommand must be created via NewRejectWithdrawalCommand constructor",
)

// RejectWithdrawalCommand represents an administrator rejecting a pending
// withdrawal. The reason is recorded on the transaction; the balance is
// untouched.
type RejectWithdrawalCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	transactionID kernel.UUID
	adminID       kernel.UUID
	reason        string

	guard guard.ConstructorGuard
}

// NewRejectWithdrawalCommand creates a command to reject a withdrawal.
// Validates that all identifiers are well-formed and a reason is given.
func NewRejectWithdrawalCommand(
	orderID kernel.UUID,
	transactionID kernel.UUID,
	adminID kernel.UUID,
	reason string,
) (RejectWithdrawalCommand, error) {
	rejectCommand := RejectWithdrawalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rejectCommand.setOrderID(orderID),
		rejectCommand.setTransactionID(transactionID),
		rejectCommand.setAdminID(adminID),
		rejectCommand.setReason(reason),
	); err != nil {
		return RejectWithdrawalCommand{}, err
	}

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectWithdrawalCommand) Validate() error {
	return c.guard.Validate(ErrRejectWithdrawalCommandIsNotConstructed)
}

// OrderID returns the order owning the transaction.
func (c RejectWithdrawalCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TransactionID returns the ledger transaction being rejected.
func (c RejectWithdrawalCommand) TransactionID() kernel.UUID {
	return c.transactionID
}

// AdminID returns the deciding administrator.
func (c RejectWithdrawalCommand) AdminID() kernel.UUID {
	return c.adminID
}

// Reason returns the rejection reason.
func (c RejectWithdrawalCommand) Reason() string {
	return c.reason
}

func (c *RejectWithdrawalCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectWithdrawalCommand) setTransactionID(transactionID kernel.UUID) error {
	if err := transactionID.Validate(); err != nil {
		return err
	}

	c.transactionID = transactionID
	return nil
}

func (c *RejectWithdrawalCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}

func (c *RejectWithdrawalCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
