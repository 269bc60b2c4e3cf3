package match

import (
	"sort"

	"sqlxref/internal/extract"
	"sqlxref/internal/schema"
)

// Stats summarizes how much of the reference schema the SQL batch covers.
type Stats struct {
	TotalEntries      int     `json:"total_entries"`
	FoundEntries      int     `json:"found_entries"`
	NotFoundEntries   int     `json:"not_found_entries"`
	Coverage          float64 `json:"coverage_percentage"`
	UniqueTables      int     `json:"unique_tables"`
	FoundUniqueTables int     `json:"found_unique_tables"`
	TableCoverage     float64 `json:"table_coverage"`
	UniqueFields      int     `json:"unique_fields"`
	FoundUniqueFields int     `json:"found_unique_fields"`
	FieldCoverage     float64 `json:"field_coverage"`
}

// Coverage computes coverage statistics over comparison rows.
func Coverage(rows []Row) Stats {
	var s Stats
	s.TotalEntries = len(rows)

	tables := map[string]bool{}
	foundTables := map[string]bool{}
	fields := map[string]bool{}
	foundFields := map[string]bool{}

	for _, row := range rows {
		if row.Found {
			s.FoundEntries++
		}
		tables[row.TableName] = true
		if row.TableFound {
			foundTables[row.TableName] = true
		}
		fields[row.FieldName] = true
		if row.FieldFound {
			foundFields[row.FieldName] = true
		}
	}

	s.NotFoundEntries = s.TotalEntries - s.FoundEntries
	s.UniqueTables = len(tables)
	s.FoundUniqueTables = len(foundTables)
	s.UniqueFields = len(fields)
	s.FoundUniqueFields = len(foundFields)
	s.Coverage = percentage(s.FoundEntries, s.TotalEntries)
	s.TableCoverage = percentage(s.FoundUniqueTables, s.UniqueTables)
	s.FieldCoverage = percentage(s.FoundUniqueFields, s.UniqueFields)
	return s
}

// Unused returns the rows whose entry was not found anywhere in the SQL,
// sorted by table then field name.
func Unused(rows []Row) []Row {
	var out []Row
	for _, row := range rows {
		if !row.Found {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TableName != out[j].TableName {
			return out[i].TableName < out[j].TableName
		}
		return out[i].FieldName < out[j].FieldName
	})
	return out
}

// SQLOnly lists identifiers present in the SQL batch but absent from the
// reference schema, sorted.
type SQLOnly struct {
	Tables []string `json:"tables"`
	Fields []string `json:"fields"`
}

// SQLOnlyItems computes the SQL-only inventory against the given entries.
func SQLOnlyItems(res *extract.Result, entries []schema.Entry) SQLOnly {
	schemaTables := map[string]bool{}
	schemaFields := map[string]bool{}
	for _, e := range entries {
		schemaTables[e.TableName] = true
		schemaFields[e.FieldName] = true
	}

	var only SQLOnly
	for _, t := range res.Tables() {
		if !schemaTables[t] {
			only.Tables = append(only.Tables, t)
		}
	}
	for _, f := range res.Fields() {
		if !schemaFields[f] {
			only.Fields = append(only.Fields, f)
		}
	}
	return only
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
