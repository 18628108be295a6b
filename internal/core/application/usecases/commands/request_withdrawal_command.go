package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrRequestWithdrawalCommandIsNotConstructed = errors.New(
	"RequestWithdrawalCommand must be created via NewRequestWithdrawalCommand constructor",
)

// RequestWithdrawalCommand represents a delivery person requesting a payout
// from their accumulated balance, tied to an order they are assigned to.
// The withdrawal stays pending until an administrator decides it.
type RequestWithdrawalCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	deliveryPersonID kernel.UUID
	amount           kernel.Money

	guard guard.ConstructorGuard
}

// NewRequestWithdrawalCommand creates a command to request a withdrawal.
// The amount is given in minor currency units and must be positive.
func NewRequestWithdrawalCommand(
	orderID kernel.UUID,
	deliveryPersonID kernel.UUID,
	amount int64,
) (RequestWithdrawalCommand, error) {
	withdrawalCommand := RequestWithdrawalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		withdrawalCommand.setOrderID(orderID),
		withdrawalCommand.setDeliveryPersonID(deliveryPersonID),
		withdrawalCommand.setAmount(amount),
	); err != nil {
		return RequestWithdrawalCommand{}, err
	}

	return withdrawalCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestWithdrawalCommand) Validate() error {
	return c.guard.Validate(ErrRequestWithdrawalCommandIsNotConstructed)
}

// OrderID returns the order the withdrawal is requested against.
func (c RequestWithdrawalCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryPersonID returns the requesting delivery person.
func (c RequestWithdrawalCommand) DeliveryPersonID() kernel.UUID {
	return c.deliveryPersonID
}

// Amount returns the requested withdrawal amount.
func (c RequestWithdrawalCommand) Amount() kernel.Money {
	return c.amount
}

func (c *RequestWithdrawalCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestWithdrawalCommand) setDeliveryPersonID(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}

	c.deliveryPersonID = deliveryPersonID
	return nil
}

func (c *RequestWithdrawalCommand) setAmount(amount int64) error {
	money, err := kernel.NewMoney(amount)
	if err != nil {
		return err
	}
	if !money.IsPositive() {
		return errs.NewValueIsInvalidError("amount must be positive")
	}

	c.amount = money
	return nil
}
