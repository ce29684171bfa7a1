// Package ports defines repository and gateway interfaces for the packaging
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for packaging order
// aggregates. An order is always stored and loaded together with its items.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including
	// added items and changed item flags.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all of its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its business number.
	GetByNumber(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)
}
