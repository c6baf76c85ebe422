package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfloresb/cellsum/internal/table"
)

func summaryTable() *table.Table {
	t := table.New("Metadata_Day", "Count_Cells_mean", "Count_Cells_n", "Count_Cells_std", "Count_Cells_sem")
	t.Append(table.Row{
		"Metadata_Day":     1.0,
		"Count_Cells_mean": 15.0,
		"Count_Cells_n":    2,
		"Count_Cells_std":  7.0710678118654755,
		"Count_Cells_sem":  5.0,
	})
	t.Append(table.Row{
		"Metadata_Day":     2.0,
		"Count_Cells_mean": 30.0,
		"Count_Cells_n":    1,
		"Count_Cells_std":  nil,
		"Count_Cells_sem":  nil,
	})
	return t
}

func TestCSVFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)

	require.NoError(t, formatter.Format(summaryTable()))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Header follows the table's column order, keys before statistics.
	assert.Equal(t, []string{
		"Metadata_Day", "Count_Cells_mean", "Count_Cells_n", "Count_Cells_std", "Count_Cells_sem",
	}, records[0])
	assert.Equal(t, []string{"1", "15", "2", "7.071067811865476", "5"}, records[1])
	// Missing statistics are empty fields, not zeros.
	assert.Equal(t, []string{"2", "30", "1", "", ""}, records[2])
}

func TestCSVFormatter_EmptyTableKeepsHeader(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)

	require.NoError(t, formatter.Format(table.New("Metadata_Day", "Count_Cells_mean")))
	assert.Equal(t, "Metadata_Day,Count_Cells_mean\n", buf.String())
}

func TestCSVFormatter_FullyEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)

	require.NoError(t, formatter.Format(table.New()))
	assert.Equal(t, "", buf.String())
}

func TestCSVFormatter_SetOutput(t *testing.T) {
	formatter := NewCSVFormatter(nil)

	var buf bytes.Buffer
	formatter.SetOutput(&buf)
	require.NoError(t, formatter.Format(summaryTable()))
	assert.NotEmpty(t, buf.String())
}
