// Package report renders extraction and comparison results for display or
// export. It only formats: every number it prints comes straight from
// extract.Result or the matcher.
package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"sqlxref/internal/extract"
	"sqlxref/internal/match"
)

// Format is an enum type representing the available output formats.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatHTML  Format = "html"
	FormatJSON  Format = "json"
)

// Comparison bundles everything the comparison report shows.
type Comparison struct {
	Rows    []match.Row
	Stats   match.Stats
	SQLOnly match.SQLOnly
}

// Formatter renders analysis and comparison reports.
type Formatter interface {
	FormatAnalysis(res *extract.Result) (string, error)
	FormatComparison(c *Comparison) (string, error)
}

// NewFormatter creates a Formatter for the given format name. An empty
// name defaults to the terminal table format.
func NewFormatter(name string) (Formatter, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatTable:
		return prettyFormatter{render: table.Writer.Render, titled: true}, nil
	case FormatCSV:
		return prettyFormatter{render: table.Writer.RenderCSV}, nil
	case FormatHTML:
		return prettyFormatter{render: table.Writer.RenderHTML, titled: true}, nil
	case FormatJSON:
		return jsonFormatter{}, nil
	default:
		return nil, fmt.Errorf("report: unsupported format: %s; use 'table', 'csv', 'html', or 'json'", name)
	}
}
