package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrOverrideOrderStatusCommandIsNotConstructed = errors.New(
	"OverrideOrderStatusCommand must be created via NewOverrideOrderStatusCommand constructor",
)

// OverrideOrderStatusCommand represents an administrator forcing an order's
// lifecycle status by label, bypassing the normal transition guards. The
// lifecycle still never moves backwards.
type OverrideOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewOverrideOrderStatusCommand creates a command to force an order status.
// The label must name one of the override targets: Packed, Shipped,
// Delivered or Returned.
func NewOverrideOrderStatusCommand(orderID kernel.UUID, label string) (OverrideOrderStatusCommand, error) {
	overrideCommand := OverrideOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		overrideCommand.setOrderID(orderID),
		overrideCommand.setTarget(label),
	); err != nil {
		return OverrideOrderStatusCommand{}, err
	}

	return overrideCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c OverrideOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrOverrideOrderStatusCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c OverrideOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the status the order is forced to.
func (c OverrideOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c *OverrideOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *OverrideOrderStatusCommand) setTarget(label string) error {
	target, err := order.StatusFromLabel(label)
	if err != nil {
		return err
	}

	c.target = target
	return nil
}
