package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"sqlxref/internal/extract"
)

// prettyFormatter renders every section through one go-pretty writer
// function, so the terminal, CSV and HTML formats stay in lockstep.
type prettyFormatter struct {
	render func(table.Writer) string
	// titled controls section titles; the CSV render drops them anyway.
	titled bool
}

func (f prettyFormatter) FormatAnalysis(res *extract.Result) (string, error) {
	if res == nil {
		return "", nil
	}

	sections := []string{
		f.render(f.statementTable(res)),
		f.render(f.occurrenceTable("Tables", res.Tables(), res.TableOccurrences)),
		f.render(f.occurrenceTable("Fields", res.Fields(), res.FieldOccurrences)),
	}
	return strings.Join(sections, "\n\n") + "\n", nil
}

func (f prettyFormatter) FormatComparison(c *Comparison) (string, error) {
	if c == nil {
		return "", nil
	}

	sections := []string{
		f.render(f.comparisonTable(c)),
		f.render(f.coverageTable(c)),
	}
	if len(c.SQLOnly.Tables) > 0 || len(c.SQLOnly.Fields) > 0 {
		sections = append(sections, f.render(f.sqlOnlyTable(c)))
	}
	return strings.Join(sections, "\n\n") + "\n", nil
}

func (f prettyFormatter) newTable(title string) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	if f.titled {
		t.SetTitle(title)
	}
	return t
}

func (f prettyFormatter) statementTable(res *extract.Result) table.Writer {
	t := f.newTable("Statements")
	t.AppendHeader(table.Row{"Type", "Count"})
	for _, typ := range sortedCountKeys(res.StatementTypes) {
		t.AppendRow(table.Row{typ, res.StatementTypes[typ]})
	}
	t.AppendFooter(table.Row{"Total", len(res.Statements)})
	return t
}

func (f prettyFormatter) occurrenceTable(title string, names []string, counts map[string]int) table.Writer {
	t := f.newTable(title)
	t.AppendHeader(table.Row{"Name", "Occurrences"})
	for _, name := range names {
		t.AppendRow(table.Row{name, counts[name]})
	}
	t.AppendFooter(table.Row{"Distinct", len(names)})
	return t
}

func (f prettyFormatter) comparisonTable(c *Comparison) table.Writer {
	t := f.newTable("Schema Comparison")
	t.AppendHeader(table.Row{
		"Table", "Field", "Table Found", "Field Found",
		"Table Occurrences", "Field Occurrences", "Occurrences", "Status",
	})
	for _, row := range c.Rows {
		t.AppendRow(table.Row{
			row.TableName, row.FieldName,
			row.TableFound, row.FieldFound,
			row.TableOccurrences, row.FieldOccurrences, row.Occurrences,
			row.Status,
		})
	}
	return t
}

func (f prettyFormatter) coverageTable(c *Comparison) table.Writer {
	s := c.Stats
	t := f.newTable("Coverage")
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRow(table.Row{"Schema entries", s.TotalEntries})
	t.AppendRow(table.Row{"Found", s.FoundEntries})
	t.AppendRow(table.Row{"Not found", s.NotFoundEntries})
	t.AppendRow(table.Row{"Coverage", fmt.Sprintf("%.2f%%", s.Coverage)})
	t.AppendRow(table.Row{"Table coverage", fmt.Sprintf("%.2f%% (%d/%d)", s.TableCoverage, s.FoundUniqueTables, s.UniqueTables)})
	t.AppendRow(table.Row{"Field coverage", fmt.Sprintf("%.2f%% (%d/%d)", s.FieldCoverage, s.FoundUniqueFields, s.UniqueFields)})
	return t
}

func sortedCountKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (f prettyFormatter) sqlOnlyTable(c *Comparison) table.Writer {
	t := f.newTable("In SQL Only")
	t.AppendHeader(table.Row{"Kind", "Name"})
	for _, name := range c.SQLOnly.Tables {
		t.AppendRow(table.Row{"table", name})
	}
	for _, name := range c.SQLOnly.Fields {
		t.AppendRow(table.Row{"field", name})
	}
	return t
}
