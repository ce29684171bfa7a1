package queries

import (
	"context"
	"math"
	"time"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/core/domain/model/order"
	"packaging/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler assembles the order form view straight from the
// database, deriving counters and button visibility on the fly.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order view queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the assembled view.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			responsible,
			status,
			defective_reason,
			defective_at,
			defective_by,
			auto_print_labels,
			label_count
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var id uuid.UUID
	err := row.Scan(
		&id,
		&resp.Number,
		&resp.Responsible,
		&resp.Status,
		&resp.DefectiveReason,
		&resp.DefectiveAt,
		&resp.DefectiveBy,
		&resp.AutoPrintLabels,
		&resp.LabelCount,
	)
	if err != nil {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"order", query.OrderID(), err)
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	status, err := order.StatusFromString(resp.Status)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ShowMarkCompleted = status.ShowMarkCompleted()
	resp.ShowResetDraft = status.ShowResetDraft()
	resp.ShowCancelOrder = status.ShowCancel()
	resp.ShowMarkDefective = status.ShowMarkDefective()
	resp.ShowResetPacking = status.ShowResetPacking()

	if err = h.fillItems(ctx, id, &resp); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.TotalItems > 0 {
		progress := float64(resp.PackedItems) / float64(resp.TotalItems) * 100
		resp.Progress = math.Round(progress*100) / 100
	}

	return resp, nil
}

func (h GetOrderQueryHandler) fillItems(
	ctx context.Context,
	orderID uuid.UUID,
	resp *GetOrderQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			item_code,
			product_name,
			dimensions,
			is_packed,
			pack_date,
			is_defective,
			defective_reason,
			defective_by
		FROM items
		WHERE order_id = ?
		ORDER BY item_code
	`, orderID).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderItemResponse
		var itemID uuid.UUID
		var packDate *time.Time

		err = rows.Scan(
			&itemID,
			&item.ItemCode,
			&item.ProductName,
			&item.Dimensions,
			&item.IsPacked,
			&packDate,
			&item.IsDefective,
			&item.DefectiveReason,
			&item.DefectiveBy,
		)
		if err != nil {
			return err
		}

		item.ID, err = kernel.UUIDFromBytes(itemID[:])
		if err != nil {
			return err
		}
		item.PackDate = packDate

		resp.TotalItems++
		if item.IsPacked {
			resp.PackedItems++
		}
		if item.IsDefective {
			resp.DefectiveItems++
		}
		resp.Items = append(resp.Items, item)
	}

	return rows.Err()
}
