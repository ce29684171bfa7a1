package commands

import (
	"context"
	"time"

	"packaging/internal/core/domain/model/order"
)

// AddItemCommandHandler adds an item to an order and persists the
// recomputed aggregate state.
type AddItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddItemCommandHandler creates a handler for adding items to orders.
func NewAddItemCommandHandler(uowFactory OrderUoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, adds the item and saves the aggregate.
// Adding an unpacked item to a completed order moves it back to in_progress.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
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

	item, err := order.NewItem(cmd.ItemID(), cmd.ItemCode(), cmd.ProductName(), cmd.Dimensions())
	if err != nil {
		return err
	}

	if err = aggregate.AddItem(item, cmd.Operator(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
