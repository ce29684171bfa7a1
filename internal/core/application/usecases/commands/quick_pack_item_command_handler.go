package commands

import (
	"context"
	"log/slog"
	"time"

	"packaging/internal/core/ports"
)

// QuickPackItemCommandHandler packs an item found by code. Shares the
// completion behavior with PackItemCommandHandler.
type QuickPackItemCommandHandler struct {
	uowFactory UoWFactory
	renderer   ports.LabelRenderer
	logger     *slog.Logger
}

// NewQuickPackItemCommandHandler creates a handler for the quick pack action.
func NewQuickPackItemCommandHandler(
	uowFactory UoWFactory,
	renderer ports.LabelRenderer,
	logger *slog.Logger,
) QuickPackItemCommandHandler {
	return QuickPackItemCommandHandler{
		uowFactory: uowFactory,
		renderer:   renderer,
		logger:     logger.With("component", "quick_pack_item_handler"),
	}
}

// Handle looks the item up by code within the order and packs it.
// Fails when the code is unknown in the order or already packed.
func (h *QuickPackItemCommandHandler) Handle(ctx context.Context, cmd QuickPackItemCommand) error {
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
	if err = aggregate.PackItemByCode(cmd.ItemCode(), cmd.Operator(), now); err != nil {
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
