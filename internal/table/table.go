// Package table provides the in-memory representation of a tabular dataset.
//
// A Table is an ordered list of column names plus rows stored as maps from
// column name to cell value. Cells hold float64 for numeric data, string for
// everything else, and nil for missing values. All rows share the table's
// column set.
package table

// Row maps column names to cell values.
type Row map[string]interface{}

// Table holds rows together with an explicit column order.
//
// The column order matters: output adapters write the header in exactly this
// order, and summary tables rely on it to place group-key columns ahead of
// the derived statistic columns.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given column order.
func New(columns ...string) *Table {
	return &Table{Columns: columns, Rows: make([]Row, 0)}
}

// Append adds a row to the table.
func (t *Table) Append(r Row) {
	t.Rows = append(t.Rows, r)
}

// HasColumn reports whether the table declares the given column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
