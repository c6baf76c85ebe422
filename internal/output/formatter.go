// Package output provides formatters for writing summary tables to various
// output formats.
//
// Currently supported formats:
//   - CSV: comma-separated values with a header row
//   - JSON Lines: one JSON object per row
//   - Table: ASCII table rendering for terminal preview
//
// Example usage:
//
//	formatter := output.NewCSVFormatter(file)
//	if err := formatter.Format(summary); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"io"

	"github.com/pfloresb/cellsum/internal/table"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to write a table in the target format and
// SetOutput to change the output destination. Formatters follow the table's
// declared column order, which puts group-key columns ahead of the derived
// statistic columns.
type Formatter interface {
	// Format writes the table in the formatter's specific format
	Format(t *table.Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}
