package queries

import (
	"context"
	"time"

	"packaging/internal/core/domain/model/order"
	"packaging/internal/core/ports"
	"packaging/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDefectiveOrdersQueryHandler collects the report rows for orders that
// became defective within the queried range, including per-order item
// counters and the defective item details.
type GetDefectiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDefectiveOrdersQueryHandler creates a handler for the defective
// orders report query.
func NewGetDefectiveOrdersQueryHandler(db *gorm.DB) GetDefectiveOrdersQueryHandler {
	return GetDefectiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order
// became defective in the range, so callers can report "nothing to show"
// instead of producing an empty report.
func (h GetDefectiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDefectiveOrdersQuery,
) ([]ports.DefectiveOrderRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	result := make([]ports.DefectiveOrderRow, 0)

	sql := `
		SELECT
			id,
			number,
			responsible,
			defective_reason,
			defective_at
		FROM orders
		WHERE status = ?
		  AND defective_at >= ?
		  AND defective_at < ?
	`
	args := []any{order.Defective.String(), query.DateFrom(), query.DateTo()}
	if query.Responsible() != "" {
		sql += " AND responsible = ?"
		args = append(args, query.Responsible())
	}
	sql += " ORDER BY number"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orderIDs := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		var row ports.DefectiveOrderRow
		var defectiveAt *time.Time

		err = rows.Scan(
			&id,
			&row.Number,
			&row.Responsible,
			&row.DefectiveReason,
			&defectiveAt,
		)
		if err != nil {
			return nil, err
		}

		if defectiveAt != nil {
			row.DefectiveAt = defectiveAt.Format("2006-01-02 15:04")
		}

		orderIDs = append(orderIDs, id)
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return nil, errs.NewObjectNotFoundError("defective orders", "requested date range")
	}

	for i, id := range orderIDs {
		if err = h.fillItems(ctx, id, &result[i], query.ShowDetails()); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// fillItems loads the item counters of one order and, in detail mode, the
// defective item lines.
func (h GetDefectiveOrdersQueryHandler) fillItems(
	ctx context.Context,
	orderID uuid.UUID,
	row *ports.DefectiveOrderRow,
	showDetails bool,
) error {
	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			item_code,
			product_name,
			is_packed,
			is_defective,
			defective_reason,
			defective_by,
			defective_at
		FROM items
		WHERE order_id = ?
		ORDER BY item_code
	`, orderID).Rows()
	if err != nil {
		return err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item ports.DefectiveItemRow
		var isPacked, isDefective bool
		var defectiveAt *time.Time

		err = itemRows.Scan(
			&item.ItemCode,
			&item.ProductName,
			&isPacked,
			&isDefective,
			&item.DefectiveReason,
			&item.DefectiveBy,
			&defectiveAt,
		)
		if err != nil {
			return err
		}

		if defectiveAt != nil {
			item.DefectiveAt = defectiveAt.Format("2006-01-02 15:04")
		}

		row.TotalItems++
		if isPacked {
			row.PackedItems++
		}
		if isDefective {
			row.DefectiveItems++
			if showDetails {
				row.Items = append(row.Items, item)
			}
		}
	}

	return itemRows.Err()
}
