package testutil

import (
	"time"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/google/uuid"
)

// TestUserID is the row owner used across fixtures.
const TestUserID = "test-user"

// CheckIn options
type CheckInOption func(*domain.MoodCheckIn)

func WithCheckInUser(userID string) CheckInOption {
	return func(c *domain.MoodCheckIn) {
		c.UserID = userID
	}
}

func WithCheckInTime(t time.Time) CheckInOption {
	return func(c *domain.MoodCheckIn) {
		c.CreatedAt = t
	}
}

func NewTestCheckIn(mood domain.Mood, opts ...CheckInOption) *domain.MoodCheckIn {
	c := &domain.MoodCheckIn{
		ID:        uuid.New().String(),
		UserID:    TestUserID,
		Mood:      mood,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ChatMessage options
type MessageOption func(*domain.ChatMessage)

func WithMessageTime(t time.Time) MessageOption {
	return func(m *domain.ChatMessage) {
		m.CreatedAt = t
	}
}

func WithMessageUser(userID string) MessageOption {
	return func(m *domain.ChatMessage) {
		m.UserID = userID
	}
}

func NewTestMessage(text string, sender domain.Sender, opts ...MessageOption) *domain.ChatMessage {
	m := &domain.ChatMessage{
		ID:        uuid.New().String(),
		UserID:    TestUserID,
		Message:   text,
		Sender:    sender,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// JournalEntry options
type JournalOption func(*domain.JournalEntry)

func WithJournalTime(t time.Time) JournalOption {
	return func(e *domain.JournalEntry) {
		e.CreatedAt = t
	}
}

func NewTestJournalEntry(mood domain.Mood, content string, opts ...JournalOption) *domain.JournalEntry {
	e := &domain.JournalEntry{
		ID:        uuid.New().String(),
		UserID:    TestUserID,
		Mood:      mood,
		Content:   content,
		WordCount: domain.CountWords(content),
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RoutineEntry options
type RoutineOption func(*domain.RoutineEntry)

func WithRoutineCompleted() RoutineOption {
	return func(e *domain.RoutineEntry) {
		e.Completed = true
	}
}

func NewTestRoutineEntry(activity, entryDate string, opts ...RoutineOption) *domain.RoutineEntry {
	e := &domain.RoutineEntry{
		ID:        uuid.New().String(),
		UserID:    TestUserID,
		Activity:  activity,
		EntryDate: entryDate,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NewTestMoodShare(message, style string) *domain.MoodShare {
	return &domain.MoodShare{
		ID:              uuid.New().String(),
		UserID:          TestUserID,
		Message:         message,
		BackgroundStyle: style,
		CreatedAt:       time.Now().UTC(),
	}
}

func NewTestCompletion(c domain.Challenge, completionDate string) *domain.ChallengeCompletion {
	return &domain.ChallengeCompletion{
		ID:             uuid.New().String(),
		UserID:         TestUserID,
		Title:          c.Title,
		Category:       c.Category,
		Description:    c.Description,
		Completed:      true,
		CompletionDate: completionDate,
		CreatedAt:      time.Now().UTC(),
	}
}
