package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/solace/internal/db"
	"github.com/alexanderramin/solace/internal/domain"
)

// SQLiteCheckInRepo implements CheckInRepo using a SQLite database.
type SQLiteCheckInRepo struct {
	db db.DBTX
}

// NewSQLiteCheckInRepo creates a new SQLiteCheckInRepo.
func NewSQLiteCheckInRepo(conn db.DBTX) *SQLiteCheckInRepo {
	return &SQLiteCheckInRepo{db: conn}
}

func (r *SQLiteCheckInRepo) Create(ctx context.Context, c *domain.MoodCheckIn) error {
	query := `INSERT INTO mood_checkins (id, user_id, mood, created_at)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.UserID,
		string(c.Mood),
		formatTime(c.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting mood check-in: %w", err)
	}
	return nil
}

func (r *SQLiteCheckInRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.MoodCheckIn, error) {
	query := `SELECT id, user_id, mood, created_at FROM mood_checkins
		WHERE user_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent check-ins: %w", err)
	}
	defer rows.Close()
	return r.scanCheckIns(rows)
}

func (r *SQLiteCheckInRepo) ListSince(ctx context.Context, userID string, since string) ([]*domain.MoodCheckIn, error) {
	query := `SELECT id, user_id, mood, created_at FROM mood_checkins
		WHERE user_id = ? AND created_at >= ? ORDER BY created_at DESC, rowid DESC`
	rows, err := r.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("listing check-ins since %s: %w", since, err)
	}
	defer rows.Close()
	return r.scanCheckIns(rows)
}

func (r *SQLiteCheckInRepo) scanCheckIns(rows *sql.Rows) ([]*domain.MoodCheckIn, error) {
	var checkins []*domain.MoodCheckIn
	for rows.Next() {
		var c domain.MoodCheckIn
		var mood, createdAtStr string
		if err := rows.Scan(&c.ID, &c.UserID, &mood, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning check-in row: %w", err)
		}
		c.Mood = domain.Mood(mood)
		var parseErr error
		c.CreatedAt, parseErr = parseTime(createdAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		checkins = append(checkins, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating check-ins: %w", err)
	}
	return checkins, nil
}
