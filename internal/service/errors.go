package service

import "errors"

var (
	// ErrInvalidMood indicates a mood outside the five categories.
	ErrInvalidMood = errors.New("invalid mood")

	// ErrEmptyMessage indicates a chat message with no content after trimming.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrEmptyContent indicates a journal entry with no content after trimming.
	ErrEmptyContent = errors.New("content is empty")

	// ErrEmptyActivity indicates a routine entry without an activity name.
	ErrEmptyActivity = errors.New("activity is empty")

	// ErrInvalidBackgroundStyle indicates an unknown postcard background token.
	ErrInvalidBackgroundStyle = errors.New("invalid background style")

	// ErrEmptyNickname indicates a blank profile nickname.
	ErrEmptyNickname = errors.New("nickname is empty")

	// ErrAlreadyCompleted indicates today's challenge was already marked done.
	ErrAlreadyCompleted = errors.New("challenge already completed today")
)
