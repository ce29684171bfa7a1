package commands

import (
	"context"
)

// ResetPackingCommandHandler clears packing progress on an order.
type ResetPackingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewResetPackingCommandHandler creates a handler for the reset packing action.
func NewResetPackingCommandHandler(uowFactory OrderUoWFactory) ResetPackingCommandHandler {
	return ResetPackingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, resets packing and saves the aggregate with its
// unpacked items.
func (h *ResetPackingCommandHandler) Handle(ctx context.Context, cmd ResetPackingCommand) error {
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

	if err = aggregate.ResetPacking(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
