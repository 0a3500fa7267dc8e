package cli

import (
	"github.com/alexanderramin/solace/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Profile context
	Nickname string

	// Mood selected on the home screen, carried into activity views.
	SelectedMood domain.Mood

	// Streak shown in the header, refreshed after each check-in.
	StreakDays int

	// Terminal dimensions
	Width  int
	Height int
}

// HasMood reports whether a mood has been selected this session.
func (s *SharedState) HasMood() bool {
	return s.SelectedMood.Valid()
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
