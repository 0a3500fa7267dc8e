package domain

import "time"

// RoutineEntry is one item of a daily routine. The completed flag is
// toggled in place; entries are deletable.
type RoutineEntry struct {
	ID        string
	UserID    string
	Activity  string
	EntryDate string // YYYY-MM-DD
	Completed bool
	Notes     string
	CreatedAt time.Time
}
