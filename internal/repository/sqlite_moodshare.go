package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/solace/internal/db"
	"github.com/alexanderramin/solace/internal/domain"
)

// SQLiteMoodShareRepo implements MoodShareRepo using a SQLite database.
type SQLiteMoodShareRepo struct {
	db db.DBTX
}

// NewSQLiteMoodShareRepo creates a new SQLiteMoodShareRepo.
func NewSQLiteMoodShareRepo(conn db.DBTX) *SQLiteMoodShareRepo {
	return &SQLiteMoodShareRepo{db: conn}
}

func (r *SQLiteMoodShareRepo) Create(ctx context.Context, s *domain.MoodShare) error {
	query := `INSERT INTO mood_shares (id, user_id, message, background_style, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.UserID,
		s.Message,
		s.BackgroundStyle,
		formatTime(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting mood share: %w", err)
	}
	return nil
}

func (r *SQLiteMoodShareRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.MoodShare, error) {
	query := `SELECT id, user_id, message, background_style, created_at
		FROM mood_shares WHERE user_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing mood shares: %w", err)
	}
	defer rows.Close()

	var shares []*domain.MoodShare
	for rows.Next() {
		var s domain.MoodShare
		var createdAtStr string
		if err := rows.Scan(&s.ID, &s.UserID, &s.Message, &s.BackgroundStyle, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning mood share row: %w", err)
		}
		var parseErr error
		s.CreatedAt, parseErr = parseTime(createdAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		shares = append(shares, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mood shares: %w", err)
	}
	return shares, nil
}
