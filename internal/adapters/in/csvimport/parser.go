// Package csvimport parses uploaded item files into import rows. The file
// format follows the warehouse convention: a header line naming the columns
// item_code, product_name and dimensions, one item per line.
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"packaging/internal/core/application/usecases/commands"
	"packaging/internal/pkg/errs"
)

const (
	columnItemCode    = "item_code"
	columnProductName = "product_name"
	columnDimensions  = "dimensions"
)

// ParseItems reads a CSV stream and returns one import row per data line.
// Columns are matched by header name, so column order does not matter.
// Header names and cell values are trimmed; fully blank lines are skipped.
func ParseItems(r io.Reader) ([]commands.ImportItemRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errs.NewValueIsRequiredError("csv file is empty")
		}
		return nil, errs.NewValueIsInvalidErrorWithCause("csv file", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns[columnItemCode]; !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause("csv file",
			fmt.Errorf("missing required column %q", columnItemCode))
	}
	if _, ok := columns[columnProductName]; !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause("csv file",
			fmt.Errorf("missing required column %q", columnProductName))
	}

	rows := make([]commands.ImportItemRow, 0)
	for line := 2; ; line++ {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("csv file",
				fmt.Errorf("line %d: %w", line, readErr))
		}

		row := commands.ImportItemRow{
			ItemCode:    cell(record, columns, columnItemCode),
			ProductName: cell(record, columns, columnProductName),
			Dimensions:  cell(record, columns, columnDimensions),
		}
		if row.ItemCode == "" && row.ProductName == "" && row.Dimensions == "" {
			continue
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func cell(record []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
