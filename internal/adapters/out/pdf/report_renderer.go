package pdf

import (
	"bytes"
	"fmt"

	"packaging/internal/core/ports"

	"github.com/jung-kurt/gofpdf"
)

// ReportRenderer produces the defective orders report document.
type ReportRenderer struct{}

// NewReportRenderer creates a defective orders report renderer.
func NewReportRenderer() *ReportRenderer {
	return &ReportRenderer{}
}

// RenderDefectiveOrdersReport draws one block per defective order with its
// counters and the defective item details. Blocks flow across pages.
func (r *ReportRenderer) RenderDefectiveOrdersReport(
	rows []ports.DefectiveOrderRow,
	dateFrom, dateTo, responsible string,
) ([]byte, error) {
	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.AddPage()

	doc.SetFont(coreFont, "B", headerSize)
	doc.Text(pageLeft, pageTop, "DEFECTIVE ORDERS REPORT")
	doc.Line(pageLeft, pageTop+5, pageRight, pageTop+5)

	if responsible == "" {
		responsible = "All"
	}

	doc.SetFont(coreFont, "", regularSize)
	doc.Text(pageLeft, pageTop+30, fmt.Sprintf("Period: From %s to %s", dateFrom, dateTo))
	doc.Text(pageLeft, pageTop+50, fmt.Sprintf("Responsible: %s", responsible))

	y := pageTop + 100
	for _, row := range rows {
		y = r.renderOrder(doc, row, y)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (r *ReportRenderer) renderOrder(doc *gofpdf.Fpdf, row ports.DefectiveOrderRow, y float64) float64 {
	y = breakPage(doc, y)

	doc.SetFont(coreFont, "B", 14)
	doc.Text(pageLeft, y, fmt.Sprintf("Order %s - %s", row.Number, row.Responsible))
	y += 20

	doc.SetFont(coreFont, "", regularSize)
	doc.Text(pageLeft+20, y, fmt.Sprintf("Defective Date: %s", row.DefectiveAt))
	y += 20

	doc.Text(pageLeft+20, y, fmt.Sprintf("Defective Items: %d/%d", row.DefectiveItems, row.TotalItems))
	y += 20

	doc.Text(pageLeft+20, y, fmt.Sprintf("Reason: %s", row.DefectiveReason))
	y += 30

	if len(row.Items) == 0 {
		return y
	}

	doc.Text(pageLeft+20, y, "Defective Items Details:")
	y += 20

	for _, item := range row.Items {
		y = breakPage(doc, y)

		doc.Text(pageLeft+40, y, fmt.Sprintf("- %s - %s", item.ItemCode, item.ProductName))
		y += 15

		doc.Text(pageLeft+60, y, fmt.Sprintf("Reason: %s", item.DefectiveReason))
		y += 15

		doc.Text(pageLeft+60, y, fmt.Sprintf("Reported by: %s at %s", item.DefectiveBy, item.DefectiveAt))
		y += 25
	}

	return y
}

func breakPage(doc *gofpdf.Fpdf, y float64) float64 {
	if y <= pageBottom {
		return y
	}

	doc.AddPage()
	doc.SetFont(coreFont, "", regularSize)
	return pageTop
}
