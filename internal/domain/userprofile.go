package domain

import "time"

// UserProfile holds the single row-owner identity. The nickname is set at
// the first-run prompt and every persisted row is scoped to UserID.
type UserProfile struct {
	ID        string
	Nickname  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
