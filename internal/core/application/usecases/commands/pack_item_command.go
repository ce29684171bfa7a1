package commands

import (
	"errors"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/pkg/guard"
)

var ErrPackItemCommandIsNotConstructed = errors.New(
	"PackItemCommand must be created via NewPackItemCommand constructor",
)

// PackItemCommand represents a request to mark one item of an order as
// packed. Packing the last item completes the order and may trigger
// automatic label creation.
type PackItemCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemID   kernel.UUID
	operator string

	guard guard.ConstructorGuard
}

// NewPackItemCommand creates a command to pack an item by its identifier.
func NewPackItemCommand(orderID, itemID kernel.UUID, operator string) (PackItemCommand, error) {
	cmd := PackItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setOperator(operator),
	); err != nil {
		return PackItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PackItemCommand) Validate() error {
	return c.guard.Validate(ErrPackItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c PackItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item to pack.
func (c PackItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Operator returns the operator performing the action.
func (c PackItemCommand) Operator() string {
	return c.operator
}

func (c *PackItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PackItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *PackItemCommand) setOperator(operator string) error {
	if operator == "" {
		return ErrOperatorIsRequired
	}

	c.operator = operator
	return nil
}
