package domain

import "time"

// MoodShare is a saved mood postcard: a short message over one of the
// fixed background styles, displayed newest-first.
type MoodShare struct {
	ID              string
	UserID          string
	Message         string
	BackgroundStyle string
	CreatedAt       time.Time
}
