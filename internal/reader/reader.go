// Package reader loads measurement tables from disk.
//
// Three on-disk formats are supported, selected by file extension: CSV (the
// default, and what CellProfiler exports), Apache Parquet, and Excel
// workbooks. Whatever the source format, the result is the same in-memory
// Table with a header-ordered column list.
package reader

import (
	"path/filepath"
	"strings"

	"github.com/pfloresb/cellsum/internal/table"
)

// ReadTable reads the table at path, picking the reader from the file
// extension. Unrecognized extensions are read as CSV.
func ReadTable(path string) (*table.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return ReadParquet(path)
	case ".xlsx":
		return ReadExcel(path)
	default:
		return ReadCSV(path)
	}
}
