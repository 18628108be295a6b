package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrRequestDepositCommandIsNotConstructed = errors.New(
	"RequestDepositCommand must be created via NewRequestDepositCommand constructor",
)

// RequestDepositCommand represents a delivery person requesting a deposit
// against an order they are assigned to, typically cash collected on
// delivery. The deposit stays pending until an administrator confirms it.
type RequestDepositCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	deliveryPersonID kernel.UUID
	amount           kernel.Money

	guard guard.ConstructorGuard
}

// NewRequestDepositCommand creates a command to request a deposit.
// The amount is given in minor currency units and must be positive.
func NewRequestDepositCommand(
	orderID kernel.UUID,
	deliveryPersonID kernel.UUID,
	amount int64,
) (RequestDepositCommand, error) {
	depositCommand := RequestDepositCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		depositCommand.setOrderID(orderID),
		depositCommand.setDeliveryPersonID(deliveryPersonID),
		depositCommand.setAmount(amount),
	); err != nil {
		return RequestDepositCommand{}, err
	}

	return depositCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestDepositCommand) Validate() error {
	return c.guard.Validate(ErrRequestDepositCommandIsNotConstructed)
}

// OrderID returns the order the deposit is requested against.
func (c RequestDepositCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryPersonID returns the requesting delivery person.
func (c RequestDepositCommand) DeliveryPersonID() kernel.UUID {
	return c.deliveryPersonID
}

// Amount returns the requested deposit amount.
func (c RequestDepositCommand) Amount() kernel.Money {
	return c.amount
}

func (c *RequestDepositCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestDepositCommand) setDeliveryPersonID(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}

	c.deliveryPersonID = deliveryPersonID
	return nil
}

func (c *RequestDepositCommand) setAmount(amount int64) error {
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
