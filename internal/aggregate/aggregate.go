// Package aggregate computes per-group summary statistics over a table.
//
// Rows are partitioned by one or more key columns, and for each partition the
// mean, sample count, sample standard deviation, and standard error of the
// mean of a measurement column are derived. This is the conversion step that
// turns raw per-image measurement exports into one summary row per
// experimental condition.
package aggregate

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pfloresb/cellsum/internal/table"
)

// group collects the rows sharing one combination of key-column values.
type group struct {
	keyVals []interface{} // key-column values, in key-column order
	values  []float64     // non-missing measurement values
}

// Summarize groups t by the given key columns and computes the mean, count,
// sample standard deviation, and SEM of the measurement column per group.
//
// Key and measurement column names are used verbatim; any of them missing
// from the table is an error. Result columns are the key columns in caller
// order followed by <measure>_mean, <measure>_n, <measure>_std, and
// <measure>_sem. Result rows are sorted by key values so identical input
// always yields identical output.
//
// A group keeps its row even when the measurement is missing in it: the
// count only reflects non-missing values, and a group with fewer than two of
// them gets a missing std (and, with none at all, a missing mean). SEM is
// std divided by the square root of the count, missing whenever std is.
func Summarize(t *table.Table, groupCols []string, measureCol string) (*table.Table, error) {
	if len(groupCols) == 0 {
		return nil, fmt.Errorf("no grouping columns given")
	}
	for _, col := range groupCols {
		if !t.HasColumn(col) {
			return nil, fmt.Errorf("grouping column %q not found in table", col)
		}
	}
	if !t.HasColumn(measureCol) {
		return nil, fmt.Errorf("measurement column %q not found in table", measureCol)
	}

	groups := make(map[string]*group)
	for _, row := range t.Rows {
		key := groupKey(row, groupCols)
		g, exists := groups[key]
		if !exists {
			keyVals := make([]interface{}, len(groupCols))
			for i, col := range groupCols {
				keyVals[i] = row[col]
			}
			g = &group{keyVals: keyVals}
			groups[key] = g
		}
		if f, ok := table.AsFloat(row[measureCol]); ok {
			g.values = append(g.values, f)
		}
	}

	ordered := make([]*group, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return lessKeyVals(ordered[i].keyVals, ordered[j].keyVals)
	})

	result := resultTable(groupCols, measureCol)
	for _, g := range ordered {
		result.Append(summarizeGroup(g, groupCols, measureCol))
	}
	return result, nil
}

// resultTable builds an empty summary table: key columns first, then the
// four derived statistic columns.
func resultTable(groupCols []string, measureCol string) *table.Table {
	columns := make([]string, 0, len(groupCols)+4)
	columns = append(columns, groupCols...)
	columns = append(columns,
		measureCol+"_mean",
		measureCol+"_n",
		measureCol+"_std",
		measureCol+"_sem",
	)
	return table.New(columns...)
}

// summarizeGroup derives one result row from a group's collected values.
func summarizeGroup(g *group, groupCols []string, measureCol string) table.Row {
	row := make(table.Row, len(groupCols)+4)
	for i, col := range groupCols {
		row[col] = g.keyVals[i]
	}

	n := len(g.values)
	row[measureCol+"_n"] = n

	var mean, std interface{}
	if n > 0 {
		sum := 0.0
		for _, v := range g.values {
			sum += v
		}
		m := sum / float64(n)
		mean = m

		// Sample standard deviation needs at least two values.
		if n > 1 {
			ss := 0.0
			for _, v := range g.values {
				d := v - m
				ss += d * d
			}
			std = math.Sqrt(ss / float64(n-1))
		}
	}
	row[measureCol+"_mean"] = mean
	row[measureCol+"_std"] = std
	if s, ok := std.(float64); ok && n > 0 {
		row[measureCol+"_sem"] = s / math.Sqrt(float64(n))
	} else {
		row[measureCol+"_sem"] = nil
	}
	return row
}

// groupKey builds a collision-safe hash key from the key-column values.
// Column names are folded in and fields are separated with NUL sequences so
// adjacent values cannot run together, and %#v keeps differently typed but
// identically printed values (2 vs "2") in separate groups.
func groupKey(row table.Row, groupCols []string) string {
	var b strings.Builder
	for i, col := range groupCols {
		if i > 0 {
			b.WriteString("\x00||\x00")
		}
		b.WriteString(col)
		b.WriteString("\x00:\x00")
		fmt.Fprintf(&b, "%#v", row[col])
	}
	return b.String()
}

// lessKeyVals orders group keys: missing values first, numeric values by
// magnitude, everything else by canonical string form. Mixed numeric and
// non-numeric values fall back to the string comparison.
func lessKeyVals(a, b []interface{}) bool {
	for i := range a {
		if i >= len(b) {
			return false
		}
		if c := compareVals(a[i], b[i]); c != 0 {
			return c < 0
		}
	}
	return false
}

func compareVals(a, b interface{}) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	af, aok := table.AsFloat(a)
	bf, bok := table.AsFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(table.CellString(a), table.CellString(b))
}
