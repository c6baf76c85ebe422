package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want interface{}
	}{
		{name: "empty cell is missing", raw: "", want: nil},
		{name: "whitespace-only cell is missing", raw: "   ", want: nil},
		{name: "integer text", raw: "42", want: 42.0},
		{name: "float text", raw: "3.25", want: 3.25},
		{name: "negative number", raw: "-1.5", want: -1.5},
		{name: "scientific notation", raw: "1e3", want: 1000.0},
		{name: "plain text", raw: "ControlA", want: "ControlA"},
		{name: "text gets trimmed", raw: "  Day 1  ", want: "Day 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCell(tt.raw))
		})
	}
}

func TestAsFloat(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want float64
		ok   bool
	}{
		{name: "float64", in: 2.5, want: 2.5, ok: true},
		{name: "int", in: 7, want: 7, ok: true},
		{name: "int64", in: int64(9), want: 9, ok: true},
		{name: "uint32", in: uint32(3), want: 3, ok: true},
		{name: "string", in: "2.5", ok: false},
		{name: "nil", in: nil, ok: false},
		{name: "bool", in: true, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsFloat(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{name: "missing is empty", in: nil, want: ""},
		{name: "string passes through", in: "Treated", want: "Treated"},
		{name: "whole float has no decimal point", in: 2.0, want: "2"},
		{name: "fractional float", in: 2.5, want: "2.5"},
		{name: "int", in: 3, want: "3"},
		{name: "bool", in: true, want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CellString(tt.in))
		})
	}
}

func TestTableColumns(t *testing.T) {
	tb := New("Metadata_Day", "Count_Cells")
	require.Equal(t, []string{"Metadata_Day", "Count_Cells"}, tb.Columns)
	require.Equal(t, 0, tb.Len())

	tb.Append(Row{"Metadata_Day": 1.0, "Count_Cells": 10.0})
	require.Equal(t, 1, tb.Len())

	assert.True(t, tb.HasColumn("Count_Cells"))
	assert.False(t, tb.HasColumn("count_cells"))
	assert.False(t, tb.HasColumn("Count_Nuclei"))
}
