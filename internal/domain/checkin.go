package domain

import "time"

// MoodCheckIn is a single mood submission. Check-ins are append-only;
// the app never mutates or deletes them.
type MoodCheckIn struct {
	ID        string
	UserID    string
	Mood      Mood
	CreatedAt time.Time
}
