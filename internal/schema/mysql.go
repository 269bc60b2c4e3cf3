package schema

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
)

// columnsQuery lists every column of the given database in definition
// order. information_schema column names are case-insensitive across MySQL
// versions, hence the explicit aliases.
const columnsQuery = `
SELECT TABLE_NAME AS table_name, COLUMN_NAME AS field_name
FROM information_schema.COLUMNS
WHERE TABLE_SCHEMA = ?
ORDER BY TABLE_NAME, ORDINAL_POSITION`

// LoadMySQL reads the reference schema from a live MySQL database instead
// of a file: every (table, column) pair of the named database becomes one
// entry.
func LoadMySQL(ctx context.Context, dsn, database string) ([]Entry, error) {
	if database == "" {
		return nil, fmt.Errorf("schema: %w: database name required for MySQL source", ErrMissingColumns)
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("schema: open MySQL connection: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("schema: connect to MySQL: %w", err)
	}

	rows, err := db.QueryContext(ctx, columnsQuery, database)
	if err != nil {
		return nil, fmt.Errorf("schema: query information_schema: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.TableName, &e.FieldName); err != nil {
			return nil, fmt.Errorf("schema: scan column row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("schema: read column rows: %w", err)
	}

	return Normalize(entries), nil
}
