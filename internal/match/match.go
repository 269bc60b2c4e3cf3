// Package match cross-checks aggregated extraction results against the
// reference schema. It performs no extraction of its own: rows are pure
// set-membership and count lookups over an extract.Result.
package match

import (
	"errors"
	"fmt"

	"sqlxref/internal/extract"
	"sqlxref/internal/schema"
)

// Row is the comparison result for one schema entry. Found is true when
// either the table or the field name appears anywhere in the aggregated
// SQL identifier sets; Occurrences is the larger of the two counts.
type Row struct {
	TableName        string `json:"table_name"`
	FieldName        string `json:"field_name"`
	TableFound       bool   `json:"table_found"`
	FieldFound       bool   `json:"field_found"`
	Found            bool   `json:"found"`
	TableOccurrences int    `json:"table_occurrences"`
	FieldOccurrences int    `json:"field_occurrences"`
	Occurrences      int    `json:"occurrences"`
	Status           string `json:"status"`
}

const (
	statusFound    = "Found"
	statusNotFound = "Not Found"
)

// ErrMalformedResult marks an extraction result that violates the matcher's
// preconditions. It indicates a bug in the caller, not a normal outcome.
var ErrMalformedResult = errors.New("malformed extraction result")

// Compare produces one Row per schema entry, in entry order. Entries are
// not deduplicated: a schema repeating a (table, field) pair yields
// repeated rows.
func Compare(res *extract.Result, entries []schema.Entry) ([]Row, error) {
	if res == nil {
		return nil, fmt.Errorf("match: %w: nil result", ErrMalformedResult)
	}
	if res.TableOccurrences == nil || res.FieldOccurrences == nil {
		return nil, fmt.Errorf("match: %w: missing occurrence maps", ErrMalformedResult)
	}

	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		row := Row{
			TableName:        e.TableName,
			FieldName:        e.FieldName,
			TableFound:       res.HasTable(e.TableName),
			FieldFound:       res.HasField(e.FieldName),
			TableOccurrences: res.TableOccurrences[e.TableName],
			FieldOccurrences: res.FieldOccurrences[e.FieldName],
		}
		row.Found = row.TableFound || row.FieldFound
		row.Occurrences = max(row.TableOccurrences, row.FieldOccurrences)
		if row.Found {
			row.Status = statusFound
		} else {
			row.Status = statusNotFound
		}
		rows = append(rows, row)
	}
	return rows, nil
}
