package commands

import (
	"context"
	"time"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/core/domain/model/order"
)

// ImportItemsCommandHandler adds a batch of imported items to an order in
// one transaction. Either all rows import or none do.
type ImportItemsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewImportItemsCommandHandler creates a handler for item imports.
func NewImportItemsCommandHandler(uowFactory OrderUoWFactory) ImportItemsCommandHandler {
	return ImportItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, adds one item per row and saves the aggregate.
func (h *ImportItemsCommandHandler) Handle(ctx context.Context, cmd ImportItemsCommand) error {
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

	now := time.Now()
	for _, row := range cmd.Rows() {
		item, err := order.NewItem(kernel.NewUUID(), row.ItemCode, row.ProductName, row.Dimensions)
		if err != nil {
			return err
		}
		if err = aggregate.AddItem(item, cmd.Operator(), now); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
