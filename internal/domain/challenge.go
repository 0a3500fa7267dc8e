package domain

import "time"

// Challenge is a static daily challenge descriptor.
type Challenge struct {
	ID          string
	Title       string
	Description string
	Category    string
	Difficulty  Difficulty
}

// ChallengeCompletion records that a user finished a challenge on a day.
// Completions are append-only.
type ChallengeCompletion struct {
	ID             string
	UserID         string
	Title          string
	Category       string
	Description    string
	Completed      bool
	CompletionDate string // YYYY-MM-DD
	CreatedAt      time.Time
}
