package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/pfloresb/cellsum/internal/table"
)

// ReadParquet reads a parquet file into a table. Column order follows the
// file's schema. The whole file is loaded into memory, which is fine for the
// per-image measurement exports this tool targets.
func ReadParquet(path string) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	columns := make([]string, 0)
	for _, field := range pqFile.Schema().Fields() {
		columns = append(columns, field.Name())
	}
	t := table.New(columns...)

	r := parquet.NewReader(pqFile)
	defer r.Close()

	for {
		raw := make(map[string]interface{})
		err := r.Read(&raw)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		row := make(table.Row, len(columns))
		for _, col := range columns {
			row[col] = normalizeCell(raw[col])
		}
		t.Append(row)
	}
	return t, nil
}

// normalizeCell maps a parquet value onto the table's cell model: numeric
// types widen to float64, strings and byte slices become string, missing
// stays nil.
func normalizeCell(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	default:
		if f, ok := table.AsFloat(v); ok {
			return f
		}
		return table.CellString(val)
	}
}
