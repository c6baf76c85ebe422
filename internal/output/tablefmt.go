package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/pfloresb/cellsum/internal/table"
)

// TableFormatter renders a table as an ASCII table, for previewing a summary
// on the terminal.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new ASCII table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer.
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format renders the table with a header row in the table's column order.
// Missing cells render as empty.
func (f *TableFormatter) Format(t *table.Table) error {
	w := tablewriter.NewWriter(f.writer)
	w.SetHeader(t.Columns)
	w.SetAutoFormatHeaders(false)

	for _, row := range t.Rows {
		record := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			record[i] = table.CellString(row[col])
		}
		w.Append(record)
	}
	w.Render()
	return nil
}
