package commands

import (
	"context"
	"time"
)

// MarkOrderDefectiveCommandHandler flags an order defective by operator
// action, recording who reported it and when.
type MarkOrderDefectiveCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderDefectiveCommandHandler creates a handler for order defects.
func NewMarkOrderDefectiveCommandHandler(uowFactory OrderUoWFactory) MarkOrderDefectiveCommandHandler {
	return MarkOrderDefectiveCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the transition and saves the aggregate.
func (h *MarkOrderDefectiveCommandHandler) Handle(ctx context.Context, cmd MarkOrderDefectiveCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkDefective(cmd.Reason(), cmd.Operator(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
