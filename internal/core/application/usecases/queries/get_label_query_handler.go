package queries

import (
	"context"
	"fmt"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLabelQueryHandler reads one label row including the PDF document.
type GetLabelQueryHandler struct {
	db *gorm.DB
}

// NewGetLabelQueryHandler creates a handler for label queries.
func NewGetLabelQueryHandler(db *gorm.DB) GetLabelQueryHandler {
	return GetLabelQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError for an unknown
// label or for a label whose document was never generated.
func (h GetLabelQueryHandler) Handle(
	ctx context.Context,
	query GetLabelQuery,
) (GetLabelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLabelQueryResponse{}, err
	}

	var resp GetLabelQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, number, created_at, document, is_printed
		FROM labels
		WHERE id = ?
	`, query.LabelID().Bytes()).Row()

	err := row.Scan(&id, &resp.Number, &resp.CreatedAt, &resp.Document, &resp.IsPrinted)
	if err != nil {
		return GetLabelQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"label", query.LabelID(), err)
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetLabelQueryResponse{}, err
	}

	if len(resp.Document) == 0 {
		return GetLabelQueryResponse{}, errs.NewObjectNotFoundError(
			"label document", query.LabelID())
	}
	resp.FileName = fmt.Sprintf("shipping_label_%s.pdf", resp.Number)

	return resp, nil
}
