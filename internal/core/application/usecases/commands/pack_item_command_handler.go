package commands

import (
	"context"
	"log/slog"
	"time"

	"packaging/internal/core/ports"
)

// PackItemCommandHandler marks an item as packed and persists the
// recomputed order. When packing completes the order, the handler issues
// the first shipping label if auto-printing is enabled.
type PackItemCommandHandler struct {
	uowFactory UoWFactory
	renderer   ports.LabelRenderer
	logger     *slog.Logger
}

// NewPackItemCommandHandler creates a handler for packing items.
// The renderer is used for automatic label creation on completion.
func NewPackItemCommandHandler(
	uowFactory UoWFactory,
	renderer ports.LabelRenderer,
	logger *slog.Logger,
) PackItemCommandHandler {
	return PackItemCommandHandler{
		uowFactory: uowFactory,
		renderer:   renderer,
		logger:     logger.With("component", "pack_item_handler"),
	}
}

// Handle loads the order, packs the item and saves everything in one
// transaction, including the auto-created label when completion fires.
func (h *PackItemCommandHandler) Handle(ctx context.Context, cmd PackItemCommand) error {
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
	if err = aggregate.PackItem(cmd.ItemID(), cmd.Operator(), now); err != nil {
		return err
	}

	// A failed label must not abort the completing pack; the label can be
	// printed manually once the order is completed.
	if labelErr := issueLabelOnCompletion(ctx, uow, h.renderer, aggregate, now); labelErr != nil {
		h.logger.WarnContext(ctx, "Automatic label creation failed",
			"order", aggregate.Number().String(), "error", labelErr)
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
