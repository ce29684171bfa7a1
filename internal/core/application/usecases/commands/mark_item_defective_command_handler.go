package commands

import (
	"context"
	"time"
)

// MarkItemDefectiveCommandHandler flags an item defective and persists the
// recomputed order, which becomes defective on the first flagged item.
type MarkItemDefectiveCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkItemDefectiveCommandHandler creates a handler for item defects.
func NewMarkItemDefectiveCommandHandler(uowFactory OrderUoWFactory) MarkItemDefectiveCommandHandler {
	return MarkItemDefectiveCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, flags the item and saves the aggregate.
func (h *MarkItemDefectiveCommandHandler) Handle(ctx context.Context, cmd MarkItemDefectiveCommand) error {
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

	if err = aggregate.MarkItemDefective(cmd.ItemID(), cmd.Reason(), cmd.Operator(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
