package commands

import (
	"errors"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/pkg/guard"
)

var ErrMarkOrderCompletedCommandIsNotConstructed = errors.New(
	"MarkOrderCompletedCommand must be created via NewMarkOrderCompletedCommand constructor",
)

// MarkOrderCompletedCommand completes an order by explicit operator action,
// regardless of how many items are packed.
type MarkOrderCompletedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderCompletedCommand creates a command to complete an order.
func NewMarkOrderCompletedCommand(orderID kernel.UUID) (MarkOrderCompletedCommand, error) {
	cmd := MarkOrderCompletedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return MarkOrderCompletedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderCompletedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderCompletedCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c MarkOrderCompletedCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkOrderCompletedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
