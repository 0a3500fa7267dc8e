package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/solace/internal/db"
	"github.com/alexanderramin/solace/internal/domain"
)

// SQLiteChatMessageRepo implements ChatMessageRepo using a SQLite database.
type SQLiteChatMessageRepo struct {
	db db.DBTX
}

// NewSQLiteChatMessageRepo creates a new SQLiteChatMessageRepo.
func NewSQLiteChatMessageRepo(conn db.DBTX) *SQLiteChatMessageRepo {
	return &SQLiteChatMessageRepo{db: conn}
}

func (r *SQLiteChatMessageRepo) Create(ctx context.Context, m *domain.ChatMessage) error {
	query := `INSERT INTO chat_messages (id, user_id, message, sender, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.UserID,
		m.Message,
		string(m.Sender),
		formatTime(m.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting chat message: %w", err)
	}
	return nil
}

// ListHistory returns the newest messages in ascending creation order,
// the order they are displayed in. Timestamps are second-granular so
// rowid breaks ties for messages inserted within the same second.
func (r *SQLiteChatMessageRepo) ListHistory(ctx context.Context, userID string, limit int) ([]*domain.ChatMessage, error) {
	query := `SELECT id, user_id, message, sender, created_at FROM (
			SELECT rowid, id, user_id, message, sender, created_at FROM chat_messages
			WHERE user_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?
		) ORDER BY created_at ASC, rowid ASC`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing chat history: %w", err)
	}
	defer rows.Close()
	return r.scanMessages(rows)
}

// ListRecentBySender returns the newest messages from one sender,
// newest first. Used for anti-repetition lookback.
func (r *SQLiteChatMessageRepo) ListRecentBySender(ctx context.Context, userID string, sender domain.Sender, limit int) ([]*domain.ChatMessage, error) {
	query := `SELECT id, user_id, message, sender, created_at FROM chat_messages
		WHERE user_id = ? AND sender = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, string(sender), limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent %s messages: %w", sender, err)
	}
	defer rows.Close()
	return r.scanMessages(rows)
}

func (r *SQLiteChatMessageRepo) scanMessages(rows *sql.Rows) ([]*domain.ChatMessage, error) {
	var messages []*domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		var sender, createdAtStr string
		if err := rows.Scan(&m.ID, &m.UserID, &m.Message, &sender, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning chat message row: %w", err)
		}
		m.Sender = domain.Sender(sender)
		var parseErr error
		m.CreatedAt, parseErr = parseTime(createdAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chat messages: %w", err)
	}
	return messages, nil
}
