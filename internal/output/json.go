package output

import (
	"encoding/json"
	"io"

	"github.com/pfloresb/cellsum/internal/table"
)

// JSONFormatter writes a table as JSON Lines.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer.
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per row. Missing cells encode as null.
func (j *JSONFormatter) Format(t *table.Table) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range t.Rows {
		if err := encoder.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
