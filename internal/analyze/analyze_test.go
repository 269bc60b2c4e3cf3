package analyze

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFilesMergesBatch(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.sql", "SELECT id FROM users;")
	b := writeFile(t, dir, "b.sql", "INSERT INTO users (id, name) VALUES (1, 'x');")
	c := writeFile(t, dir, "c.sql", "SELECT name FROM orders;")

	perFile, merged, err := Files(context.Background(), []string{a, b, c}, Options{Workers: 2})
	require.NoError(t, err)

	require.Len(t, perFile, 3)
	// Per-file results keep input order regardless of worker scheduling.
	assert.Equal(t, a, perFile[0].Path)
	assert.Equal(t, b, perFile[1].Path)
	assert.Equal(t, c, perFile[2].Path)
	assert.Equal(t, []string{"users"}, perFile[0].Result.Tables())

	assert.Equal(t, 2, merged.TableOccurrences["users"])
	assert.Equal(t, 1, merged.TableOccurrences["orders"])
	assert.Equal(t, 2, merged.FieldOccurrences["id"])
	assert.Equal(t, 2, merged.FieldOccurrences["name"])
	assert.Equal(t, map[string]int{"SELECT": 2, "INSERT": 1}, merged.StatementTypes)
	assert.Len(t, merged.Statements, 3)
}

func TestFilesSingleWorkerDefault(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.sql", "SELECT id FROM users;")

	_, merged, err := Files(context.Background(), []string{a}, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"users"}, merged.Tables())
}

func TestFilesUnreadableFileFails(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.sql", "SELECT id FROM users;")
	missing := filepath.Join(dir, "missing.sql")

	_, _, err := Files(context.Background(), []string{a, missing}, Options{Workers: 4})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.sql")
}

func TestFilesEmptyBatch(t *testing.T) {
	perFile, merged, err := Files(context.Background(), nil, Options{})

	require.NoError(t, err)
	assert.Empty(t, perFile)
	assert.Empty(t, merged.Statements)
}

func TestFilesCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	a := writeFile(t, dir, "a.sql", "SELECT id FROM users;")

	_, _, err := Files(ctx, []string{a}, Options{})
	assert.Error(t, err)
}
