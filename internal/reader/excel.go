package reader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pfloresb/cellsum/internal/table"
)

// ReadExcel reads the first sheet of an xlsx workbook into a table. The
// sheet's first row is the header; cells are coerced the same way as CSV
// cells. Rows shorter than the header (excelize trims trailing empties) are
// padded with missing values.
func ReadExcel(path string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return table.New(), nil
	}

	header := rows[0]
	t := table.New(header...)
	for _, record := range rows[1:] {
		row := make(table.Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = table.ParseCell(record[i])
			} else {
				row[col] = nil
			}
		}
		t.Append(row)
	}
	return t, nil
}
