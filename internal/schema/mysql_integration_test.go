package schema

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mysql"
)

func TestLoadMySQLIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	mysqlContainer, err := mysql.Run(ctx, "mysql:8.0",
		mysql.WithDatabase("refdb"),
		mysql.WithUsername("root"),
		mysql.WithPassword("testpass"),
	)
	require.NoError(t, err, "failed to start MySQL container")

	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(mysqlContainer); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := mysqlContainer.ConnectionString(ctx)
	require.NoError(t, err, "failed to get connection string")

	db, err := sql.Open("mysql", dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close DB connection: %v", err)
		}
	})
	require.NoError(t, db.PingContext(ctx))

	_, err = db.ExecContext(ctx, `CREATE TABLE users (id INT PRIMARY KEY, name VARCHAR(64))`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `CREATE TABLE orders (id INT PRIMARY KEY, user_id INT, total DECIMAL(10,2))`)
	require.NoError(t, err)

	entries, err := LoadMySQL(ctx, dsn, "refdb")
	require.NoError(t, err)

	assert.Contains(t, entries, Entry{TableName: "users", FieldName: "id"})
	assert.Contains(t, entries, Entry{TableName: "users", FieldName: "name"})
	assert.Contains(t, entries, Entry{TableName: "orders", FieldName: "total"})
	assert.Len(t, entries, 5)
}

func TestLoadMySQLRequiresDatabase(t *testing.T) {
	_, err := LoadMySQL(context.Background(), "root@tcp(127.0.0.1:3306)/", "")

	assert.ErrorIs(t, err, ErrMissingColumns)
}

func TestLoadMySQLBadDSN(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	_, err := LoadMySQL(context.Background(), "invalid:user@tcp(127.0.0.1:1)/nope", "nope")

	assert.Error(t, err)
}
