package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/solace/internal/db"
	"github.com/alexanderramin/solace/internal/domain"
)

// SQLiteRoutineRepo implements RoutineRepo using a SQLite database.
type SQLiteRoutineRepo struct {
	db db.DBTX
}

// NewSQLiteRoutineRepo creates a new SQLiteRoutineRepo.
func NewSQLiteRoutineRepo(conn db.DBTX) *SQLiteRoutineRepo {
	return &SQLiteRoutineRepo{db: conn}
}

func (r *SQLiteRoutineRepo) Create(ctx context.Context, e *domain.RoutineEntry) error {
	query := `INSERT INTO routine_entries (id, user_id, activity, entry_date, completed, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		e.Activity,
		e.EntryDate,
		boolToInt(e.Completed),
		e.Notes,
		formatTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting routine entry: %w", err)
	}
	return nil
}

func (r *SQLiteRoutineRepo) GetByID(ctx context.Context, userID, id string) (*domain.RoutineEntry, error) {
	query := `SELECT id, user_id, activity, entry_date, completed, notes, created_at
		FROM routine_entries WHERE user_id = ? AND id = ?`
	row := r.db.QueryRowContext(ctx, query, userID, id)

	var e domain.RoutineEntry
	var completed int
	var createdAtStr string
	err := row.Scan(&e.ID, &e.UserID, &e.Activity, &e.EntryDate, &completed, &e.Notes, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("routine entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning routine entry: %w", err)
	}
	e.Completed = intToBool(completed)
	e.CreatedAt, err = parseTime(createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &e, nil
}

func (r *SQLiteRoutineRepo) ListByDate(ctx context.Context, userID, entryDate string) ([]*domain.RoutineEntry, error) {
	query := `SELECT id, user_id, activity, entry_date, completed, notes, created_at
		FROM routine_entries WHERE user_id = ? AND entry_date = ?
		ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, userID, entryDate)
	if err != nil {
		return nil, fmt.Errorf("listing routine entries for %s: %w", entryDate, err)
	}
	defer rows.Close()

	var entries []*domain.RoutineEntry
	for rows.Next() {
		var e domain.RoutineEntry
		var completed int
		var createdAtStr string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Activity, &e.EntryDate, &completed, &e.Notes, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning routine entry row: %w", err)
		}
		e.Completed = intToBool(completed)
		var parseErr error
		e.CreatedAt, parseErr = parseTime(createdAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating routine entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteRoutineRepo) SetCompleted(ctx context.Context, userID, id string, completed bool) error {
	query := `UPDATE routine_entries SET completed = ? WHERE user_id = ? AND id = ?`
	res, err := r.db.ExecContext(ctx, query, boolToInt(completed), userID, id)
	if err != nil {
		return fmt.Errorf("updating routine entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking routine update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("routine entry: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteRoutineRepo) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM routine_entries WHERE user_id = ? AND id = ?`
	_, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return fmt.Errorf("deleting routine entry: %w", err)
	}
	return nil
}
