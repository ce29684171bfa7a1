package commands

import (
	"errors"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrResponsibleIsRequired = errors.New("responsible is required")
)

// CreateOrderCommand represents a request to create a new packaging order.
// The order number is not part of the command: it is drawn from the order
// sequence inside the same transaction that persists the order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "j.doe", true)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	responsible     string
	autoPrintLabels bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new packaging order.
// Validates that the order ID is valid and the responsible operator is set.
func NewCreateOrderCommand(orderID kernel.UUID, responsible string, autoPrintLabels bool) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		autoPrintLabels: autoPrintLabels,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setResponsible(responsible),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Responsible returns the operator responsible for the order.
func (c CreateOrderCommand) Responsible() string {
	return c.responsible
}

// AutoPrintLabels reports whether the order generates a label on completion.
func (c CreateOrderCommand) AutoPrintLabels() bool {
	return c.autoPrintLabels
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setResponsible(responsible string) error {
	if responsible == "" {
		return ErrResponsibleIsRequired
	}

	c.responsible = responsible
	return nil
}
