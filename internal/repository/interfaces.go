package repository

import (
	"context"

	"github.com/alexanderramin/solace/internal/domain"
)

type CheckInRepo interface {
	Create(ctx context.Context, c *domain.MoodCheckIn) error
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.MoodCheckIn, error)
	ListSince(ctx context.Context, userID string, since string) ([]*domain.MoodCheckIn, error)
}

type ChatMessageRepo interface {
	Create(ctx context.Context, m *domain.ChatMessage) error
	ListHistory(ctx context.Context, userID string, limit int) ([]*domain.ChatMessage, error)
	ListRecentBySender(ctx context.Context, userID string, sender domain.Sender, limit int) ([]*domain.ChatMessage, error)
}

type JournalRepo interface {
	Create(ctx context.Context, e *domain.JournalEntry) error
	GetByID(ctx context.Context, userID, id string) (*domain.JournalEntry, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.JournalEntry, error)
}

type RoutineRepo interface {
	Create(ctx context.Context, e *domain.RoutineEntry) error
	GetByID(ctx context.Context, userID, id string) (*domain.RoutineEntry, error)
	ListByDate(ctx context.Context, userID, entryDate string) ([]*domain.RoutineEntry, error)
	SetCompleted(ctx context.Context, userID, id string, completed bool) error
	Delete(ctx context.Context, userID, id string) error
}

type ChallengeRepo interface {
	Create(ctx context.Context, c *domain.ChallengeCompletion) error
	ListByUser(ctx context.Context, userID string) ([]*domain.ChallengeCompletion, error)
	CompletedOn(ctx context.Context, userID, completionDate string) (bool, error)
}

type MoodShareRepo interface {
	Create(ctx context.Context, s *domain.MoodShare) error
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.MoodShare, error)
}

type UserProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}

type AppStateRepo interface {
	Get(ctx context.Context) (*domain.AppState, error)
	Save(ctx context.Context, s *domain.AppState) error
}
