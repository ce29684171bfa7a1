package commands

import (
	"errors"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/pkg/guard"
)

var ErrUnpackItemCommandIsNotConstructed = errors.New(
	"UnpackItemCommand must be created via NewUnpackItemCommand constructor",
)

// UnpackItemCommand represents a request to clear the packed flag of one
// item, for example after a mispack.
type UnpackItemCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemID   kernel.UUID
	operator string

	guard guard.ConstructorGuard
}

// NewUnpackItemCommand creates a command to unpack an item.
func NewUnpackItemCommand(orderID, itemID kernel.UUID, operator string) (UnpackItemCommand, error) {
	cmd := UnpackItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setOperator(operator),
	); err != nil {
		return UnpackItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnpackItemCommand) Validate() error {
	return c.guard.Validate(ErrUnpackItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c UnpackItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item to unpack.
func (c UnpackItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Operator returns the operator performing the action.
func (c UnpackItemCommand) Operator() string {
	return c.operator
}

func (c *UnpackItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UnpackItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UnpackItemCommand) setOperator(operator string) error {
	if operator == "" {
		return ErrOperatorIsRequired
	}

	c.operator = operator
	return nil
}
