package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/solace/internal/db"
	"github.com/alexanderramin/solace/internal/domain"
)

// SQLiteAppStateRepo implements AppStateRepo using a SQLite database.
// App state is a single row keyed 'default', mirrored at view transitions.
type SQLiteAppStateRepo struct {
	db db.DBTX
}

// NewSQLiteAppStateRepo creates a new SQLiteAppStateRepo.
func NewSQLiteAppStateRepo(conn db.DBTX) *SQLiteAppStateRepo {
	return &SQLiteAppStateRepo{db: conn}
}

func (r *SQLiteAppStateRepo) Get(ctx context.Context) (*domain.AppState, error) {
	query := `SELECT id, screen, selected_mood, updated_at FROM app_state WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var s domain.AppState
	var mood, updatedAtStr string
	err := row.Scan(&s.ID, &s.Screen, &mood, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("app state: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning app state: %w", err)
	}
	s.SelectedMood = domain.Mood(mood)
	s.UpdatedAt, err = parseTime(updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &s, nil
}

func (r *SQLiteAppStateRepo) Save(ctx context.Context, s *domain.AppState) error {
	query := `INSERT OR REPLACE INTO app_state (id, screen, selected_mood, updated_at)
		VALUES ('default', ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.Screen,
		string(s.SelectedMood),
		formatTime(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("saving app state: %w", err)
	}
	return nil
}
