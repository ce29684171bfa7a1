package commands

import (
	"errors"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
	ErrItemCodeIsRequired    = errors.New("item code is required")
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrOperatorIsRequired    = errors.New("operator is required")
)

// AddItemCommand represents a request to add an item to an existing order.
// Dimensions are optional free text.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	itemID      kernel.UUID
	itemCode    string
	productName string
	dimensions  string
	operator    string

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add an item to an order.
func NewAddItemCommand(
	orderID, itemID kernel.UUID,
	itemCode, productName, dimensions, operator string,
) (AddItemCommand, error) {
	cmd := AddItemCommand{
		dimensions: dimensions,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setItemCode(itemCode),
		cmd.setProductName(productName),
		cmd.setOperator(operator),
	); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c AddItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier for the new item.
func (c AddItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ItemCode returns the operator-facing item code.
func (c AddItemCommand) ItemCode() string {
	return c.itemCode
}

// ProductName returns the product description.
func (c AddItemCommand) ProductName() string {
	return c.productName
}

// Dimensions returns the optional free-text dimensions.
func (c AddItemCommand) Dimensions() string {
	return c.dimensions
}

// Operator returns the operator performing the action.
func (c AddItemCommand) Operator() string {
	return c.operator
}

func (c *AddItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AddItemCommand) setItemCode(itemCode string) error {
	if itemCode == "" {
		return ErrItemCodeIsRequired
	}

	c.itemCode = itemCode
	return nil
}

func (c *AddItemCommand) setProductName(productName string) error {
	if productName == "" {
		return ErrProductNameIsRequired
	}

	c.productName = productName
	return nil
}

func (c *AddItemCommand) setOperator(operator string) error {
	if operator == "" {
		return ErrOperatorIsRequired
	}

	c.operator = operator
	return nil
}
