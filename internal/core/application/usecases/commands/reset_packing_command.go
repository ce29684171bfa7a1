package commands

import (
	"errors"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/pkg/guard"
)

var ErrResetPackingCommandIsNotConstructed = errors.New(
	"ResetPackingCommand must be created via NewResetPackingCommand constructor",
)

// ResetPackingCommand clears the packed flag of every item in the order
// and returns the order to draft. Defect flags are kept.
type ResetPackingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResetPackingCommand creates a command to reset an order's packing.
func NewResetPackingCommand(orderID kernel.UUID) (ResetPackingCommand, error) {
	cmd := ResetPackingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ResetPackingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetPackingCommand) Validate() error {
	return c.guard.Validate(ErrResetPackingCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c ResetPackingCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ResetPackingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
