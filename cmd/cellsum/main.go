// Command cellsum converts per-image measurement tables, such as
// CellProfiler CSV exports, into per-condition summaries: for every
// combination of condition-column values it reports the mean, count, sample
// standard deviation, and standard error of the mean of one measurement
// column.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pfloresb/cellsum/internal/aggregate"
	"github.com/pfloresb/cellsum/internal/output"
	"github.com/pfloresb/cellsum/internal/reader"
	"github.com/pfloresb/cellsum/internal/table"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the whole program minus os.Exit, so tests can drive it with real
// files and inspect the exit code and output directly.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cellsum", flag.ContinueOnError)
	fs.SetOutput(stderr)

	matchedFlag := fs.Bool("matched", false, "Treat <condition_columns> as a \"day,condition\" pair: keep only rows where both columns agree, then group by the day column")
	formatFlag := fs.String("f", "csv", "Output format: csv, json, jsonl")
	previewFlag := fs.Bool("preview", false, "Also print the summary table to stdout")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: cellsum [options] <input_table> <output_table> <condition_columns> <measure_column>\n\n")
		fmt.Fprintf(stderr, "Summarize a measurement table per condition (mean, n, std, sem).\n\n")
		fmt.Fprintf(stderr, "Input format is picked from the extension: .csv (default), .parquet, .xlsx.\n")
		fmt.Fprintf(stderr, "For multiple condition columns, pass a comma-separated list.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  cellsum results.csv summary.csv Metadata_Condition Count_Cells\n")
		fmt.Fprintf(stderr, "  cellsum results.csv summary.csv Metadata_Day,Metadata_Condition Count_Cells\n")
		fmt.Fprintf(stderr, "  cellsum -matched results.csv summary.csv Metadata_Day,Metadata_Condition Count_Cells\n")
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 4 {
		fmt.Fprintf(stderr, "Error: expected 4 arguments, got %d\n\n", fs.NArg())
		fs.Usage()
		return 1
	}
	inputPath := fs.Arg(0)
	outputPath := fs.Arg(1)
	conditionCols := splitColumns(fs.Arg(2))
	measureCol := fs.Arg(3)

	if len(conditionCols) == 0 {
		fmt.Fprintln(stdout, "Error: no condition columns given")
		return 1
	}
	if *matchedFlag && len(conditionCols) != 2 {
		fmt.Fprintf(stdout, "Error: -matched needs exactly two condition columns, got %d\n", len(conditionCols))
		return 1
	}

	var formatter output.Formatter
	switch *formatFlag {
	case "csv":
		formatter = output.NewCSVFormatter(nil)
	case "json", "jsonl":
		formatter = output.NewJSONFormatter(nil)
	default:
		fmt.Fprintf(stderr, "Error: unsupported format '%s'\n", *formatFlag)
		fmt.Fprintf(stderr, "Supported formats: csv, json, jsonl\n")
		return 1
	}

	data, err := reader.ReadTable(inputPath)
	if err != nil {
		fmt.Fprintf(stdout, "Error reading %s: %v\n", inputPath, err)
		return 1
	}

	var summary *table.Table
	if *matchedFlag {
		summary, err = aggregate.SummarizeMatched(data, conditionCols[0], conditionCols[1], measureCol, stdout)
	} else {
		summary, err = aggregate.Summarize(data, conditionCols, measureCol)
	}
	if err != nil {
		fmt.Fprintf(stdout, "Error processing data: %v\n", err)
		return 1
	}

	out, err := os.Create(outputPath)
	if err != nil {
		fmt.Fprintf(stdout, "Error writing to %s: %v\n", outputPath, err)
		return 1
	}
	formatter.SetOutput(out)
	if err := formatter.Format(summary); err != nil {
		out.Close()
		fmt.Fprintf(stdout, "Error writing to %s: %v\n", outputPath, err)
		return 1
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(stdout, "Error writing to %s: %v\n", outputPath, err)
		return 1
	}
	fmt.Fprintf(stdout, "Output written to %s\n", outputPath)

	if *previewFlag {
		if err := output.NewTableFormatter(stdout).Format(summary); err != nil {
			fmt.Fprintf(stdout, "Error rendering preview: %v\n", err)
			return 1
		}
	}
	return 0
}

// splitColumns splits a comma-separated column list, trimming whitespace and
// dropping empty entries.
func splitColumns(s string) []string {
	parts := strings.Split(s, ",")
	cols := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			cols = append(cols, trimmed)
		}
	}
	return cols
}
