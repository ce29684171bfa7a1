package commands

import (
	"errors"
	"strings"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/pkg/guard"
)

var ErrMarkItemDefectiveCommandIsNotConstructed = errors.New(
	"MarkItemDefectiveCommand must be created via NewMarkItemDefectiveCommand constructor",
)

// MarkItemDefectiveCommand represents a request to flag one item of an
// order as defective. The reason is optional; an empty reason is replaced
// by a default at the domain level.
type MarkItemDefectiveCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemID   kernel.UUID
	reason   string
	operator string

	guard guard.ConstructorGuard
}

// NewMarkItemDefectiveCommand creates a command to flag an item defective
// without an explicit reason.
func NewMarkItemDefectiveCommand(orderID, itemID kernel.UUID, operator string) (MarkItemDefectiveCommand, error) {
	cmd := MarkItemDefectiveCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setOperator(operator),
	); err != nil {
		return MarkItemDefectiveCommand{}, err
	}

	return cmd, nil
}

// NewMarkItemDefectiveCommandWithReason creates a command to flag an item
// defective with the given reason. The reason must not be blank; callers
// that have no reason to give use NewMarkItemDefectiveCommand instead.
func NewMarkItemDefectiveCommandWithReason(
	orderID, itemID kernel.UUID,
	reason, operator string,
) (MarkItemDefectiveCommand, error) {
	cmd := MarkItemDefectiveCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setReason(reason),
		cmd.setOperator(operator),
	); err != nil {
		return MarkItemDefectiveCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkItemDefectiveCommand) Validate() error {
	return c.guard.Validate(ErrMarkItemDefectiveCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c MarkItemDefectiveCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item to flag.
func (c MarkItemDefectiveCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Reason returns the defect reason, possibly empty.
func (c MarkItemDefectiveCommand) Reason() string {
	return c.reason
}

// Operator returns the operator reporting the defect.
func (c MarkItemDefectiveCommand) Operator() string {
	return c.operator
}

func (c *MarkItemDefectiveCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkItemDefectiveCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *MarkItemDefectiveCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrDefectReasonIsRequired
	}

	c.reason = reason
	return nil
}

func (c *MarkItemDefectiveCommand) setOperator(operator string) error {
	if operator == "" {
		return ErrOperatorIsRequired
	}

	c.operator = operator
	return nil
}
