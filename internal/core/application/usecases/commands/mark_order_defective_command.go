package commands

import (
	"errors"
	"strings"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/pkg/guard"
)

var (
	ErrMarkOrderDefectiveCommandIsNotConstructed = errors.New(
		"MarkOrderDefectiveCommand must be created via NewMarkOrderDefectiveCommand constructor",
	)
	ErrDefectReasonIsRequired = errors.New("defect reason is required")
)

// MarkOrderDefectiveCommand flags a whole order as defective by explicit
// operator action. Unlike item-level defects, the reason is mandatory here
// because there is no automatic reason to fall back to.
type MarkOrderDefectiveCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	reason   string
	operator string

	guard guard.ConstructorGuard
}

// NewMarkOrderDefectiveCommand creates a command to flag an order defective.
func NewMarkOrderDefectiveCommand(orderID kernel.UUID, reason, operator string) (MarkOrderDefectiveCommand, error) {
	cmd := MarkOrderDefectiveCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
		cmd.setOperator(operator),
	); err != nil {
		return MarkOrderDefectiveCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderDefectiveCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderDefectiveCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c MarkOrderDefectiveCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the defect reason.
func (c MarkOrderDefectiveCommand) Reason() string {
	return c.reason
}

// Operator returns the operator reporting the defect.
func (c MarkOrderDefectiveCommand) Operator() string {
	return c.operator
}

func (c *MarkOrderDefectiveCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkOrderDefectiveCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrDefectReasonIsRequired
	}

	c.reason = reason
	return nil
}

func (c *MarkOrderDefectiveCommand) setOperator(operator string) error {
	if operator == "" {
		return ErrOperatorIsRequired
	}

	c.operator = operator
	return nil
}
