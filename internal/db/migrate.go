package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// migrations is the ordered list of schema statements. Statements must be
// idempotent (IF NOT EXISTS) because the full list re-runs on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS user_profile (
		id         TEXT PRIMARY KEY,
		nickname   TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS mood_checkins (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		mood       TEXT NOT NULL
		           CHECK(mood IN ('very-sad','sad','neutral','happy','very-happy')),
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_mood_checkins_user ON mood_checkins(user_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS chat_messages (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		message    TEXT NOT NULL,
		sender     TEXT NOT NULL CHECK(sender IN ('user','assistant')),
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_messages_user ON chat_messages(user_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS journal_entries (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		mood       TEXT NOT NULL
		           CHECK(mood IN ('very-sad','sad','neutral','happy','very-happy')),
		content    TEXT NOT NULL,
		word_count INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_journal_entries_user ON journal_entries(user_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS routine_entries (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		activity   TEXT NOT NULL,
		entry_date TEXT NOT NULL,
		completed  INTEGER NOT NULL DEFAULT 0,
		notes      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_routine_entries_user_date ON routine_entries(user_id, entry_date)`,

	`CREATE TABLE IF NOT EXISTS challenge_completions (
		id                    TEXT PRIMARY KEY,
		user_id               TEXT NOT NULL,
		challenge_title       TEXT NOT NULL,
		challenge_type        TEXT NOT NULL,
		challenge_description TEXT NOT NULL DEFAULT '',
		completed             INTEGER NOT NULL DEFAULT 1,
		completion_date       TEXT NOT NULL,
		created_at            TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_challenge_completions_user ON challenge_completions(user_id, completion_date)`,

	`CREATE TABLE IF NOT EXISTS mood_shares (
		id               TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL,
		message          TEXT NOT NULL,
		background_style TEXT NOT NULL,
		created_at       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_mood_shares_user ON mood_shares(user_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS app_state (
		id            TEXT PRIMARY KEY,
		screen        TEXT NOT NULL DEFAULT '',
		selected_mood TEXT NOT NULL DEFAULT '',
		updated_at    TEXT NOT NULL
	)`,
}
