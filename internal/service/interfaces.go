package service

import (
	"context"
	"time"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/streak"
)

type CheckInService interface {
	Log(ctx context.Context, userID string, mood domain.Mood) (*domain.MoodCheckIn, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.MoodCheckIn, error)
	Streak(ctx context.Context, userID string, now time.Time) (int, streak.Badge, error)
}

// ChatResult pairs the persisted assistant message with reply metadata.
type ChatResult struct {
	Message *domain.ChatMessage
	Source  string
	Crisis  bool
}

type ChatService interface {
	Send(ctx context.Context, userID, text string, mood domain.Mood) (*ChatResult, error)
	History(ctx context.Context, userID string, limit int) ([]*domain.ChatMessage, error)
}

type JournalService interface {
	Save(ctx context.Context, userID string, mood domain.Mood, content string) (*domain.JournalEntry, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.JournalEntry, error)
}

type RoutineService interface {
	Add(ctx context.Context, userID, activity, entryDate, notes string) (*domain.RoutineEntry, error)
	ListForDate(ctx context.Context, userID, entryDate string) ([]*domain.RoutineEntry, error)
	Toggle(ctx context.Context, userID, id string) (*domain.RoutineEntry, error)
	Remove(ctx context.Context, userID, id string) error
}

type ChallengeService interface {
	Today(now time.Time) domain.Challenge
	Complete(ctx context.Context, userID string, now time.Time) (*domain.ChallengeCompletion, error)
	CompletedToday(ctx context.Context, userID string, now time.Time) (bool, error)
	History(ctx context.Context, userID string) ([]*domain.ChallengeCompletion, error)
}

type MoodShareService interface {
	Share(ctx context.Context, userID, message, backgroundStyle string) (*domain.MoodShare, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.MoodShare, error)
}

type ProfileService interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	SetNickname(ctx context.Context, nickname string) (*domain.UserProfile, error)
}

type AppStateService interface {
	Restore(ctx context.Context) (*domain.AppState, error)
	Persist(ctx context.Context, screen string, mood domain.Mood) error
}
