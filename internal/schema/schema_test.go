package schema

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	entries := Normalize([]Entry{
		{TableName: "  Users ", FieldName: " ID "},
		{TableName: "ORDERS", FieldName: "Total"},
		{TableName: "", FieldName: "ghost"},
		{TableName: "ghost", FieldName: "   "},
	})

	require.Len(t, entries, 2)
	assert.Equal(t, Entry{TableName: "users", FieldName: "id"}, entries[0])
	assert.Equal(t, Entry{TableName: "orders", FieldName: "total"}, entries[1])
}

func TestNormalizeKeepsDuplicates(t *testing.T) {
	entries := Normalize([]Entry{
		{TableName: "users", FieldName: "id"},
		{TableName: "users", FieldName: "id"},
	})

	assert.Len(t, entries, 2)
}

func TestLoadCSV(t *testing.T) {
	csv := "table_name,field_name,comment\nUsers,ID,primary key\norders, total ,\n"

	entries, err := LoadCSV(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, Entry{TableName: "users", FieldName: "id"}, entries[0])
	assert.Equal(t, Entry{TableName: "orders", FieldName: "total"}, entries[1])
}

func TestLoadCSVColumnOrderIrrelevant(t *testing.T) {
	csv := "field_name,table_name\nid,users\n"

	entries, err := LoadCSV(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, Entry{TableName: "users", FieldName: "id"}, entries[0])
}

func TestLoadCSVMissingColumns(t *testing.T) {
	_, err := LoadCSV(strings.NewReader("table,column\nusers,id\n"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumns)
}

func TestLoadCSVEmpty(t *testing.T) {
	_, err := LoadCSV(strings.NewReader(""))

	assert.ErrorIs(t, err, ErrMissingColumns)
}

func TestLoadTOML(t *testing.T) {
	doc := `
[[entries]]
table_name = "Users"
field_name = "ID"

[[entries]]
table_name = "orders"
field_name = "total"

[[entries]]
table_name = ""
field_name = "dropped"
`
	entries, err := LoadTOML(strings.NewReader(doc))
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, Entry{TableName: "users", FieldName: "id"}, entries[0])
}

func TestLoadTOMLInvalid(t *testing.T) {
	_, err := LoadTOML(strings.NewReader("entries = ["))

	assert.Error(t, err)
}

func TestLoadFileDispatch(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "schema.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("table_name,field_name\nusers,id\n"), 0o644))

	entries, err := LoadFile(csvPath)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLoadFileUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := LoadFile(path)

	var ufe *UnsupportedFormatError
	require.ErrorAs(t, err, &ufe)
	assert.Equal(t, path, ufe.Path)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.csv"))

	assert.Error(t, err)
}
