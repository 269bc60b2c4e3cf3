package schema

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMissingColumns marks a schema file whose header lacks one of the two
// required columns. Comparison never runs against such a file.
var ErrMissingColumns = errors.New("missing required columns")

// LoadCSV reads reference schema rows from CSV content. The header must
// contain table_name and field_name columns (any order, extra columns are
// ignored). Rows are normalized and empty rows dropped.
func LoadCSV(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	// Schema exports sometimes carry ragged trailing columns.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("schema: empty CSV: %w", ErrMissingColumns)
	}
	if err != nil {
		return nil, fmt.Errorf("schema: read CSV header: %w", err)
	}

	tableIdx, fieldIdx := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "table_name":
			tableIdx = i
		case "field_name":
			fieldIdx = i
		}
	}
	if tableIdx < 0 || fieldIdx < 0 {
		return nil, fmt.Errorf("schema: %w: need table_name and field_name", ErrMissingColumns)
	}

	var entries []Entry
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("schema: read CSV row: %w", err)
		}
		if tableIdx >= len(record) || fieldIdx >= len(record) {
			continue
		}
		entries = append(entries, Entry{
			TableName: record[tableIdx],
			FieldName: record[fieldIdx],
		})
	}

	return Normalize(entries), nil
}
