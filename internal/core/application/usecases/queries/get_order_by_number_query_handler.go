package queries

import (
	"context"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByNumberQueryHandler resolves an order number to its identifier
// and returns the same form view as GetOrderQueryHandler.
type GetOrderByNumberQueryHandler struct {
	db           *gorm.DB
	orderHandler GetOrderQueryHandler
}

// NewGetOrderByNumberQueryHandler creates a handler for order lookups by
// number.
func NewGetOrderByNumberQueryHandler(db *gorm.DB) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{
		db:           db,
		orderHandler: NewGetOrderQueryHandler(db),
	}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order
// carries the number.
func (h GetOrderByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByNumberQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var id uuid.UUID
	row := h.db.WithContext(ctx).Raw(
		"SELECT id FROM orders WHERE number = ?", query.Number().String()).Row()
	if err := row.Scan(&id); err != nil {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"order number", query.Number().String(), err)
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderQuery, err := NewGetOrderQuery(orderID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return h.orderHandler.Handle(ctx, orderQuery)
}
