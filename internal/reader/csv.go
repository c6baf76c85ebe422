package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pfloresb/cellsum/internal/table"
)

// ReadCSV reads a delimited text file whose first record is the header row.
//
// Cells are coerced on the way in: empty cells become missing, numeric text
// becomes float64, everything else stays a string. A file that is empty or
// holds only a header yields a table with columns and no rows.
func ReadCSV(path string) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return table.New(), nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	t := table.New(header...)
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		row := make(table.Row, len(header))
		for i, col := range header {
			row[col] = table.ParseCell(record[i])
		}
		t.Append(row)
	}
	return t, nil
}
