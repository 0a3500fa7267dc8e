package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/solace/internal/db"
	"github.com/alexanderramin/solace/internal/domain"
)

// SQLiteChallengeRepo implements ChallengeRepo using a SQLite database.
type SQLiteChallengeRepo struct {
	db db.DBTX
}

// NewSQLiteChallengeRepo creates a new SQLiteChallengeRepo.
func NewSQLiteChallengeRepo(conn db.DBTX) *SQLiteChallengeRepo {
	return &SQLiteChallengeRepo{db: conn}
}

func (r *SQLiteChallengeRepo) Create(ctx context.Context, c *domain.ChallengeCompletion) error {
	query := `INSERT INTO challenge_completions
		(id, user_id, challenge_title, challenge_type, challenge_description, completed, completion_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.UserID,
		c.Title,
		c.Category,
		c.Description,
		boolToInt(c.Completed),
		c.CompletionDate,
		formatTime(c.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting challenge completion: %w", err)
	}
	return nil
}

func (r *SQLiteChallengeRepo) ListByUser(ctx context.Context, userID string) ([]*domain.ChallengeCompletion, error) {
	query := `SELECT id, user_id, challenge_title, challenge_type, challenge_description, completed, completion_date, created_at
		FROM challenge_completions WHERE user_id = ? ORDER BY completion_date DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing challenge completions: %w", err)
	}
	defer rows.Close()

	var completions []*domain.ChallengeCompletion
	for rows.Next() {
		var c domain.ChallengeCompletion
		var completed int
		var createdAtStr string
		if err := rows.Scan(&c.ID, &c.UserID, &c.Title, &c.Category, &c.Description, &completed, &c.CompletionDate, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning challenge completion row: %w", err)
		}
		c.Completed = intToBool(completed)
		var parseErr error
		c.CreatedAt, parseErr = parseTime(createdAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		completions = append(completions, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating challenge completions: %w", err)
	}
	return completions, nil
}

// CompletedOn reports whether the user already completed a challenge on the
// given date. Completions are once-per-day.
func (r *SQLiteChallengeRepo) CompletedOn(ctx context.Context, userID, completionDate string) (bool, error) {
	query := `SELECT COUNT(1) FROM challenge_completions
		WHERE user_id = ? AND completion_date = ? AND completed = 1`
	var n int
	if err := r.db.QueryRowContext(ctx, query, userID, completionDate).Scan(&n); err != nil {
		return false, fmt.Errorf("counting challenge completions: %w", err)
	}
	return n > 0, nil
}
