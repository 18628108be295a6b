package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrReturnOrderCommandIsNotConstructed = errors.New(
	"ReturnOrderCommand must be created via NewReturnOrderCommand constructor",
)

// ReturnOrderCommand represents a customer returning a delivered order.
// The reason is recorded on the order and is required.
type ReturnOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewReturnOrderCommand creates a command to return a delivered order.
// Validates that the order ID is well-formed and a reason is given.
func NewReturnOrderCommand(orderID kernel.UUID, reason string) (ReturnOrderCommand, error) {
	returnCommand := ReturnOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		returnCommand.setOrderID(orderID),
		returnCommand.setReason(reason),
	); err != nil {
		return ReturnOrderCommand{}, err
	}

	return returnCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnOrderCommand) Validate() error {
	return c.guard.Validate(ErrReturnOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c ReturnOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the customer's return reason.
func (c ReturnOrderCommand) Reason() string {
	return c.reason
}

func (c *ReturnOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReturnOrderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
