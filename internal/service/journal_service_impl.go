package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/repository"
	"github.com/google/uuid"
)

type journalService struct {
	entries repository.JournalRepo
}

func NewJournalService(entries repository.JournalRepo) JournalService {
	return &journalService{entries: entries}
}

func (s *journalService) Save(ctx context.Context, userID string, mood domain.Mood, content string) (*domain.JournalEntry, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if !mood.Valid() {
		return nil, ErrInvalidMood
	}

	e := &domain.JournalEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Mood:      mood,
		Content:   content,
		WordCount: domain.CountWords(content),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.entries.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *journalService) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.JournalEntry, error) {
	return s.entries.ListRecent(ctx, userID, limit)
}
