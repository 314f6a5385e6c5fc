package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_AppliesMigrations(t *testing.T) {
	ctx := context.Background()
	conn, err := InitDB(ctx, ":memory:")
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	for _, table := range []string{"users", "posts"} {
		var name string
		err := conn.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s", table)
		assert.Equal(t, table, name)
	}

	// re-running is a no-op
	require.NoError(t, Migrate(ctx, conn))
}

func TestInitDB_EnforcesUniqueUsernameAndForeignKeys(t *testing.T) {
	ctx := context.Background()
	conn, err := InitDB(ctx, ":memory:")
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	_, err = conn.ExecContext(ctx, `INSERT INTO users (username, password) VALUES (?, ?)`, "bob1", "h")
	require.NoError(t, err)
	_, err = conn.ExecContext(ctx, `INSERT INTO users (username, password) VALUES (?, ?)`, "bob1", "h2")
	assert.Error(t, err)

	_, err = conn.ExecContext(ctx,
		`INSERT INTO posts (createdDate, title, content, authorid) VALUES (?, ?, ?, ?)`,
		"2024-01-01T00:00:00.000Z", "t", "c", 999)
	assert.Error(t, err, "post with unknown author must be rejected")
}
