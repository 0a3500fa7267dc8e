package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCreatesAllTables(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	tables := []string{
		"user_profile",
		"mood_checkins",
		"chat_messages",
		"journal_entries",
		"routine_entries",
		"challenge_completions",
		"mood_shares",
		"app_state",
	}
	for _, table := range tables {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Re-running the full statement list must not fail.
	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestMoodCheckConstraint(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO mood_checkins (id, user_id, mood, created_at) VALUES ('x', 'u', 'ecstatic', '2026-01-01T00:00:00Z')`,
	)
	assert.Error(t, err, "invalid mood label should violate the CHECK constraint")
}
