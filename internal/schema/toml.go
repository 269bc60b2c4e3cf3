package schema

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// schemaFile is the top-level TOML document: a list of [[entries]] rows
// with the same two required keys the CSV format uses.
type schemaFile struct {
	Entries []tomlEntry `toml:"entries"`
}

type tomlEntry struct {
	TableName string `toml:"table_name"`
	FieldName string `toml:"field_name"`
}

// LoadTOML reads reference schema rows from TOML content.
func LoadTOML(r io.Reader) ([]Entry, error) {
	var sf schemaFile
	if _, err := toml.NewDecoder(r).Decode(&sf); err != nil {
		return nil, fmt.Errorf("schema: decode TOML: %w", err)
	}

	entries := make([]Entry, 0, len(sf.Entries))
	for _, e := range sf.Entries {
		entries = append(entries, Entry{
			TableName: e.TableName,
			FieldName: e.FieldName,
		})
	}
	return Normalize(entries), nil
}
