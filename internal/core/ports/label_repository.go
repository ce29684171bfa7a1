package ports

import (
	"context"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/core/domain/model/label"
)

// LabelRepository defines the persistence contract for shipping labels.
// Labels carry their rendered document, so a reprint is a plain read.
type LabelRepository interface {
	// Add persists a new label.
	// The label must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *label.Label) error

	// Update persists changes to an existing label, such as the attached
	// document or the printed flag.
	Update(ctx context.Context, aggregate *label.Label) error

	// Get retrieves a label by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*label.Label, error)

	// GetAllByOrder retrieves all labels created for the given order,
	// newest first.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*label.Label, error)
}
