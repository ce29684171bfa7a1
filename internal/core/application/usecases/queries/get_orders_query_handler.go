package queries

import (
	"context"
	"math"

	"packaging/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves the order list with the item counters
// aggregated in the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Newest orders come first. An empty result is
// not an error, the board just has nothing to show.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersQueryResponse, 0)

	sql := `
		SELECT
			o.id,
			o.number,
			o.responsible,
			o.status,
			o.label_count,
			COUNT(i.id) AS total_items,
			COUNT(i.id) FILTER (WHERE i.is_packed) AS packed_items,
			COUNT(i.id) FILTER (WHERE i.is_defective) AS defective_items
		FROM orders o
		LEFT JOIN items i ON i.order_id = o.id
	`
	args := make([]any, 0, 1)
	if query.HasStatusFilter() {
		sql += " WHERE o.status = ?"
		args = append(args, query.Status())
	}
	sql += `
		GROUP BY o.id, o.number, o.responsible, o.status, o.label_count
		ORDER BY o.number DESC
	`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Number,
			&resp.Responsible,
			&resp.Status,
			&resp.LabelCount,
			&resp.TotalItems,
			&resp.PackedItems,
			&resp.DefectiveItems,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		if resp.TotalItems > 0 {
			progress := float64(resp.PackedItems) / float64(resp.TotalItems) * 100
			resp.Progress = math.Round(progress*100) / 100
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
