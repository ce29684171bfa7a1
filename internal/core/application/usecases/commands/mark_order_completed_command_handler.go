package commands

import (
	"context"
)

// MarkOrderCompletedCommandHandler completes an order by operator action.
// Unlike completion through packing, no label is issued automatically.
type MarkOrderCompletedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderCompletedCommandHandler creates a handler for manual completion.
func NewMarkOrderCompletedCommandHandler(uowFactory OrderUoWFactory) MarkOrderCompletedCommandHandler {
	return MarkOrderCompletedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the transition and saves the aggregate.
func (h *MarkOrderCompletedCommandHandler) Handle(ctx context.Context, cmd MarkOrderCompletedCommand) error {
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

	if err = aggregate.MarkCompleted(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
