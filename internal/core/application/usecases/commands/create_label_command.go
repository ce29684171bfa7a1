package commands

import (
	"errors"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/pkg/guard"
)

var ErrCreateLabelCommandIsNotConstructed = errors.New(
	"CreateLabelCommand must be created via NewCreateLabelCommand constructor",
)

// CreateLabelCommand requests a new shipping label for an order. Labels can
// be created in any order state; each call produces a new label with the
// next number.
type CreateLabelCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateLabelCommand creates a command to issue a label for an order.
func NewCreateLabelCommand(orderID kernel.UUID) (CreateLabelCommand, error) {
	cmd := CreateLabelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CreateLabelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLabelCommand) Validate() error {
	return c.guard.Validate(ErrCreateLabelCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to label.
func (c CreateLabelCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CreateLabelCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
