// Package pdf renders shipping labels and the defective orders report as
// PDF documents. Both renderers draw on US Letter pages with the gofpdf
// core fonts, so no external font files are needed at runtime.
package pdf

import (
	"bytes"
	"fmt"

	"packaging/internal/core/domain/model/label"
	"packaging/internal/core/domain/model/order"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageLeft    = 100.0
	pageRight   = 500.0
	pageTop     = 60.0
	pageBottom  = 740.0
	timeLayout  = "2006-01-02 15:04"
	coreFont    = "Helvetica"
	regularSize = 12.0
	headerSize  = 16.0
)

// LabelRenderer produces the shipping label document of an order.
type LabelRenderer struct{}

// NewLabelRenderer creates a shipping label renderer.
func NewLabelRenderer() *LabelRenderer {
	return &LabelRenderer{}
}

// RenderLabel draws the transport label: header, order and label numbers,
// creation time and the item list. Long item lists continue on extra pages.
func (r *LabelRenderer) RenderLabel(l *label.Label, o *order.Order) ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.AddPage()

	doc.SetFont(coreFont, "B", headerSize)
	doc.Text(pageLeft, pageTop, "TRANSPORT LABEL")
	doc.Line(pageLeft, pageTop+5, pageRight, pageTop+5)

	doc.SetFont(coreFont, "", regularSize)
	doc.Text(pageLeft, pageTop+50, fmt.Sprintf("Order Number: %s", o.Number()))
	doc.Text(pageLeft, pageTop+75, fmt.Sprintf("Label Number: %s", l.Number()))
	doc.Text(pageLeft, pageTop+100, fmt.Sprintf("Created: %s", l.CreatedAt().Format(timeLayout)))

	doc.Text(pageLeft, pageTop+150, "Items in order:")
	y := pageTop + 175
	for _, item := range o.Items() {
		if y > pageBottom {
			doc.AddPage()
			doc.SetFont(coreFont, "", regularSize)
			y = pageTop
		}
		doc.Text(pageLeft+20, y, fmt.Sprintf("- %s - %s", item.ItemCode(), item.ProductName()))
		y += 20
	}

	if y > pageBottom-60 {
		doc.AddPage()
		doc.SetFont(coreFont, "", regularSize)
	}
	doc.Text(pageLeft, pageBottom-60, "[BARCODE PLACEHOLDER]")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
