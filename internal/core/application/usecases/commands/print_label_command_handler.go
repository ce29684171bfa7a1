package commands

import (
	"context"
	"time"

	"packaging/internal/core/domain/model/label"
	"packaging/internal/pkg/errs"
)

// PrintLabelCommandHandler marks a label printed and returns it with its
// stored document for download.
type PrintLabelCommandHandler struct {
	uowFactory LabelUoWFactory
}

// NewPrintLabelCommandHandler creates a handler for label printing.
func NewPrintLabelCommandHandler(uowFactory LabelUoWFactory) PrintLabelCommandHandler {
	return PrintLabelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the label, records the print and returns the label.
// Fails when no document is attached.
func (h *PrintLabelCommandHandler) Handle(ctx context.Context, cmd PrintLabelCommand) (*label.Label, error) {
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

	labelRepo := uow.LabelRepository()
	l, err := labelRepo.Get(ctx, cmd.LabelID())
	if err != nil {
		return nil, err
	}

	if !l.HasDocument() {
		return nil, errs.NewObjectNotFoundError("label document", cmd.LabelID())
	}

	l.MarkPrinted(time.Now())
	if err = labelRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return l, nil
}
