package aggregate

import (
	"fmt"
	"io"
	"strings"

	"github.com/pfloresb/cellsum/internal/resolve"
	"github.com/pfloresb/cellsum/internal/table"
)

// SummarizeMatched keeps only the rows where the day and condition columns
// hold the same value, then summarizes the measurement column grouped by the
// day column. It exists for designs where two differently named columns are
// expected to encode the same logical value, so that agreement itself selects
// the rows of interest.
//
// Both column names are resolved leniently (exact, case-insensitive, then
// fuzzy). Two outcomes are recoverable rather than errors: when either name
// fails to resolve, or when no row has matching values, a diagnostic is
// written to diag and an empty table is returned with a nil error. Values are
// compared by canonical string form so a numeric 2 matches the text "2".
// Anything else that goes wrong, such as a missing measurement column, is
// returned as an error.
func SummarizeMatched(t *table.Table, dayReq, condReq, measureCol string, diag io.Writer) (*table.Table, error) {
	dayCol, dayOK := resolve.Column(t.Columns, dayReq)
	condCol, condOK := resolve.Column(t.Columns, condReq)
	if !dayOK || !condOK {
		fmt.Fprintf(diag, "could not find the requested columns. Available columns: %s\n",
			strings.Join(t.Columns, ", "))
		return table.New(), nil
	}

	filtered := table.New(t.Columns...)
	for _, row := range t.Rows {
		if table.CellString(row[dayCol]) == table.CellString(row[condCol]) {
			filtered.Append(row)
		}
	}
	if filtered.Len() == 0 {
		fmt.Fprintf(diag, "no rows where %s == %s\n", dayReq, condReq)
		return resultTable([]string{dayCol}, measureCol), nil
	}

	return Summarize(filtered, []string{dayCol}, measureCol)
}
