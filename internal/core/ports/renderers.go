package ports

import (
	"packaging/internal/core/domain/model/label"
	"packaging/internal/core/domain/model/order"
)

// LabelRenderer renders a shipping label document for an order.
// The result is a complete PDF file ready to attach to the label.
type LabelRenderer interface {
	RenderLabel(l *label.Label, o *order.Order) ([]byte, error)
}

// DefectiveOrderRow is one order in the defective orders report, together
// with its defective items.
type DefectiveOrderRow struct {
	Number          string
	Responsible     string
	DefectiveReason string
	DefectiveAt     string
	TotalItems      int
	PackedItems     int
	DefectiveItems  int
	Items           []DefectiveItemRow
}

// DefectiveItemRow is one defective item inside a report row.
type DefectiveItemRow struct {
	ItemCode        string
	ProductName     string
	DefectiveReason string
	DefectiveBy     string
	DefectiveAt     string
}

// ReportRenderer renders the defective orders report for a date range.
// An empty responsible means the report covers all operators.
// The result is a complete PDF file ready for download.
type ReportRenderer interface {
	RenderDefectiveOrdersReport(rows []DefectiveOrderRow, dateFrom, dateTo, responsible string) ([]byte, error)
}
