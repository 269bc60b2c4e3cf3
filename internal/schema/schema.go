// Package schema loads the user-supplied reference schema: the
// (table_name, field_name) pairs the extraction results are checked
// against. Sources are CSV and TOML files plus a live MySQL database; all
// of them produce the same normalized entry rows.
package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry is one reference schema row after normalization: both names
// lowercased and trimmed, neither empty.
type Entry struct {
	TableName string
	FieldName string
}

// Normalize lowercases and trims both names of every entry and drops rows
// that end up with an empty table or field name. Order is preserved and
// duplicates are kept: the matcher reports one row per retained entry.
func Normalize(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		e.TableName = strings.ToLower(strings.TrimSpace(e.TableName))
		e.FieldName = strings.ToLower(strings.TrimSpace(e.FieldName))
		if e.TableName == "" || e.FieldName == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

// LoadFile loads a reference schema file, dispatching on the extension.
func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schema: open file %q: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(f)
	case ".toml":
		return LoadTOML(f)
	default:
		return nil, &UnsupportedFormatError{Path: path}
	}
}

// UnsupportedFormatError reports a schema file extension no loader claims.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return "schema: unsupported file format: " + e.Path
}
