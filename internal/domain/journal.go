package domain

import (
	"strings"
	"time"
)

// JournalEntry is a saved piece of free writing, immutable once saved.
type JournalEntry struct {
	ID        string
	UserID    string
	Mood      Mood
	Content   string
	WordCount int
	CreatedAt time.Time
}

// CountWords returns the whitespace-delimited word count of s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}
