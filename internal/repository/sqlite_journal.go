package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/solace/internal/db"
	"github.com/alexanderramin/solace/internal/domain"
)

// SQLiteJournalRepo implements JournalRepo using a SQLite database.
type SQLiteJournalRepo struct {
	db db.DBTX
}

// NewSQLiteJournalRepo creates a new SQLiteJournalRepo.
func NewSQLiteJournalRepo(conn db.DBTX) *SQLiteJournalRepo {
	return &SQLiteJournalRepo{db: conn}
}

func (r *SQLiteJournalRepo) Create(ctx context.Context, e *domain.JournalEntry) error {
	query := `INSERT INTO journal_entries (id, user_id, mood, content, word_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		string(e.Mood),
		e.Content,
		e.WordCount,
		formatTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting journal entry: %w", err)
	}
	return nil
}

func (r *SQLiteJournalRepo) GetByID(ctx context.Context, userID, id string) (*domain.JournalEntry, error) {
	query := `SELECT id, user_id, mood, content, word_count, created_at
		FROM journal_entries WHERE user_id = ? AND id = ?`
	row := r.db.QueryRowContext(ctx, query, userID, id)

	var e domain.JournalEntry
	var mood, createdAtStr string
	err := row.Scan(&e.ID, &e.UserID, &mood, &e.Content, &e.WordCount, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("journal entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning journal entry: %w", err)
	}
	e.Mood = domain.Mood(mood)
	e.CreatedAt, err = parseTime(createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &e, nil
}

func (r *SQLiteJournalRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.JournalEntry, error) {
	query := `SELECT id, user_id, mood, content, word_count, created_at
		FROM journal_entries WHERE user_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.JournalEntry
	for rows.Next() {
		var e domain.JournalEntry
		var mood, createdAtStr string
		if err := rows.Scan(&e.ID, &e.UserID, &mood, &e.Content, &e.WordCount, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning journal entry row: %w", err)
		}
		e.Mood = domain.Mood(mood)
		var parseErr error
		e.CreatedAt, parseErr = parseTime(createdAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journal entries: %w", err)
	}
	return entries, nil
}
