package commands

import (
	"context"
	"time"
)

// UnpackItemCommandHandler clears an item's packed flag and persists the
// recomputed order. Unpacking from completed moves the order back to
// in_progress without touching any already issued label.
type UnpackItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUnpackItemCommandHandler creates a handler for unpacking items.
func NewUnpackItemCommandHandler(uowFactory OrderUoWFactory) UnpackItemCommandHandler {
	return UnpackItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, unpacks the item and saves the aggregate.
func (h *UnpackItemCommandHandler) Handle(ctx context.Context, cmd UnpackItemCommand) error {
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

	if err = aggregate.UnpackItem(cmd.ItemID(), cmd.Operator(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
