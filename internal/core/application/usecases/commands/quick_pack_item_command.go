package commands

import (
	"errors"
	"strings"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/pkg/guard"
)

var ErrQuickPackItemCommandIsNotConstructed = errors.New(
	"QuickPackItemCommand must be created via NewQuickPackItemCommand constructor",
)

// QuickPackItemCommand represents the scan-and-pack request: the operator
// enters an item code instead of picking an item from the list. The code is
// trimmed before lookup because it usually comes from a barcode scanner.
type QuickPackItemCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemCode string
	operator string

	guard guard.ConstructorGuard
}

// NewQuickPackItemCommand creates a command to pack an item by its code.
func NewQuickPackItemCommand(orderID kernel.UUID, itemCode, operator string) (QuickPackItemCommand, error) {
	cmd := QuickPackItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemCode(itemCode),
		cmd.setOperator(operator),
	); err != nil {
		return QuickPackItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c QuickPackItemCommand) Validate() error {
	return c.guard.Validate(ErrQuickPackItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c QuickPackItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemCode returns the trimmed item code to look up.
func (c QuickPackItemCommand) ItemCode() string {
	return c.itemCode
}

// Operator returns the operator performing the action.
func (c QuickPackItemCommand) Operator() string {
	return c.operator
}

func (c *QuickPackItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *QuickPackItemCommand) setItemCode(itemCode string) error {
	itemCode = strings.TrimSpace(itemCode)
	if itemCode == "" {
		return ErrItemCodeIsRequired
	}

	c.itemCode = itemCode
	return nil
}

func (c *QuickPackItemCommand) setOperator(operator string) error {
	if operator == "" {
		return ErrOperatorIsRequired
	}

	c.operator = operator
	return nil
}
