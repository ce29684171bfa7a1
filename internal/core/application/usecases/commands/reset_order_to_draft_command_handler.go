package commands

import (
	"context"
)

// ResetOrderToDraftCommandHandler returns an order to draft status.
type ResetOrderToDraftCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewResetOrderToDraftCommandHandler creates a handler for the reset action.
func NewResetOrderToDraftCommandHandler(uowFactory OrderUoWFactory) ResetOrderToDraftCommandHandler {
	return ResetOrderToDraftCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the transition and saves the aggregate.
func (h *ResetOrderToDraftCommandHandler) Handle(ctx context.Context, cmd ResetOrderToDraftCommand) error {
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

	if err = aggregate.ResetToDraft(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
