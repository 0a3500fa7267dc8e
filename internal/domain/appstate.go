package domain

import "time"

// AppState is the serializable session state mirrored to storage at view
// transition boundaries so a session can resume where it left off.
type AppState struct {
	ID           string
	Screen       string
	SelectedMood Mood // empty when no mood is selected
	UpdatedAt    time.Time
}
