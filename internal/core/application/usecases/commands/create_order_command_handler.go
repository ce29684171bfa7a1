package commands

import (
	"context"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/core/domain/model/order"
	"packaging/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Draws the next order number from the sequence and creates the order in
// draft status, all within one transaction.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires a UoWFactory because numbering needs the sequence generator.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// The drawn number rolls back together with the order if persistence fails.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	seq, err := uow.SequenceGenerator().Next(ctx, ports.OrderSequence)
	if err != nil {
		return err
	}

	number, err := kernel.NextOrderNumber(seq)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), number, cmd.Responsible())
	if err != nil {
		return err
	}
	aggregate.SetAutoPrintLabels(cmd.AutoPrintLabels())

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
