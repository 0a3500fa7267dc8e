package domain

import "time"

// ChatMessage is one turn of the companion conversation, persisted per
// user and read back in creation order for history display.
type ChatMessage struct {
	ID        string
	UserID    string
	Message   string
	Sender    Sender
	CreatedAt time.Time
}
