package commands

import (
	"context"
	"time"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/core/domain/model/label"
	"packaging/internal/core/domain/model/order"
	"packaging/internal/core/ports"
)

// issueLabel draws the next label number, renders the document, persists the
// label and registers it on the order. Runs inside the caller's transaction,
// so a failed render rolls back the number together with everything else.
func issueLabel(
	ctx context.Context,
	uow UoW,
	renderer ports.LabelRenderer,
	aggregate *order.Order,
	now time.Time,
) (*label.Label, error) {
	seq, err := uow.SequenceGenerator().Next(ctx, ports.LabelSequence)
	if err != nil {
		return nil, err
	}

	number, err := kernel.NextLabelNumber(seq)
	if err != nil {
		return nil, err
	}

	l, err := label.NewLabel(kernel.NewUUID(), number, aggregate.ID(), now)
	if err != nil {
		return nil, err
	}

	document, err := renderer.RenderLabel(l, aggregate)
	if err != nil {
		return nil, err
	}
	if err = l.AttachDocument(document); err != nil {
		return nil, err
	}

	if err = uow.LabelRepository().Add(ctx, l); err != nil {
		return nil, err
	}
	if err = aggregate.RegisterLabel(l.ID()); err != nil {
		return nil, err
	}

	return l, nil
}

// issueLabelOnCompletion consumes the order's completion event and, when
// auto-printing is on and the order has no label yet, issues the first one.
// Callers treat a failure here as best-effort: they log it and commit the
// completing transition anyway, which may leave a gap in the label sequence.
func issueLabelOnCompletion(
	ctx context.Context,
	uow UoW,
	renderer ports.LabelRenderer,
	aggregate *order.Order,
	now time.Time,
) error {
	if !aggregate.TakeCompletionEvent() {
		return nil
	}
	if !aggregate.AutoPrintLabels() || aggregate.LabelCount() > 0 {
		return nil
	}

	_, err := issueLabel(ctx, uow, renderer, aggregate, now)
	return err
}
