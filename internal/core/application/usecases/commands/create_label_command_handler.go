package commands

import (
	"context"
	"fmt"
	"time"

	"packaging/internal/core/domain/model/label"
	"packaging/internal/core/domain/model/order"
	"packaging/internal/core/ports"
	"packaging/internal/pkg/errs"
)

// CreateLabelCommandHandler issues a shipping label for an order: draws the
// next label number, renders the document and links the label to the order,
// all in one transaction.
type CreateLabelCommandHandler struct {
	uowFactory UoWFactory
	renderer   ports.LabelRenderer
}

// NewCreateLabelCommandHandler creates a handler for manual label creation.
func NewCreateLabelCommandHandler(uowFactory UoWFactory, renderer ports.LabelRenderer) CreateLabelCommandHandler {
	return CreateLabelCommandHandler{
		uowFactory: uowFactory,
		renderer:   renderer,
	}
}

// Handle issues the label and returns it so callers can report the
// assigned number.
func (h *CreateLabelCommandHandler) Handle(ctx context.Context, cmd CreateLabelCommand) (*label.Label, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if aggregate.Status() != order.Completed {
		return nil, errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("cannot print label, order %s is not completed", aggregate.Number()))
	}

	l, err := issueLabel(ctx, uow, h.renderer, aggregate, time.Now())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return l, nil
}
