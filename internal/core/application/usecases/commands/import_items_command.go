package commands

import (
	"errors"
	"fmt"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/pkg/guard"
)

var (
	ErrImportItemsCommandIsNotConstructed = errors.New(
		"ImportItemsCommand must be created via NewImportItemsCommand constructor",
	)
	ErrNoRowsToImport = errors.New("no rows to import")
)

// ImportItemRow is one parsed row of an item import file.
// Parsing and field trimming happen at the adapter level; the command only
// receives clean rows.
type ImportItemRow struct {
	ItemCode    string
	ProductName string
	Dimensions  string
}

// ImportItemsCommand adds a batch of items to an order from a parsed
// import file.
type ImportItemsCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	rows     []ImportItemRow
	operator string

	guard guard.ConstructorGuard
}

// NewImportItemsCommand creates a command to import items into an order.
// Every row must carry an item code and a product name.
func NewImportItemsCommand(orderID kernel.UUID, rows []ImportItemRow, operator string) (ImportItemsCommand, error) {
	cmd := ImportItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRows(rows),
		cmd.setOperator(operator),
	); err != nil {
		return ImportItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ImportItemsCommand) Validate() error {
	return c.guard.Validate(ErrImportItemsCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c ImportItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Rows returns the parsed import rows.
func (c ImportItemsCommand) Rows() []ImportItemRow {
	return c.rows
}

// Operator returns the operator performing the import.
func (c ImportItemsCommand) Operator() string {
	return c.operator
}

func (c *ImportItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ImportItemsCommand) setRows(rows []ImportItemRow) error {
	if len(rows) == 0 {
		return ErrNoRowsToImport
	}
	for i, row := range rows {
		if row.ItemCode == "" {
			return fmt.Errorf("row %d: %w", i+1, ErrItemCodeIsRequired)
		}
		if row.ProductName == "" {
			return fmt.Errorf("row %d: %w", i+1, ErrProductNameIsRequired)
		}
	}

	c.rows = rows
	return nil
}

func (c *ImportItemsCommand) setOperator(operator string) error {
	if operator == "" {
		return ErrOperatorIsRequired
	}

	c.operator = operator
	return nil
}
