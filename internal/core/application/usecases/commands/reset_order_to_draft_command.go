package commands

import (
	"errors"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/pkg/guard"
)

var ErrResetOrderToDraftCommandIsNotConstructed = errors.New(
	"ResetOrderToDraftCommand must be created via NewResetOrderToDraftCommand constructor",
)

// ResetOrderToDraftCommand returns a completed or canceled order to draft.
// Item flags are left as they are.
type ResetOrderToDraftCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResetOrderToDraftCommand creates a command to reset an order to draft.
func NewResetOrderToDraftCommand(orderID kernel.UUID) (ResetOrderToDraftCommand, error) {
	cmd := ResetOrderToDraftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ResetOrderToDraftCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetOrderToDraftCommand) Validate() error {
	return c.guard.Validate(ErrResetOrderToDraftCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c ResetOrderToDraftCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ResetOrderToDraftCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
