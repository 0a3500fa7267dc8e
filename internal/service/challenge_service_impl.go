package service

import (
	"context"
	"time"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/mood"
	"github.com/alexanderramin/solace/internal/repository"
	"github.com/google/uuid"
)

type challengeService struct {
	completions repository.ChallengeRepo
}

func NewChallengeService(completions repository.ChallengeRepo) ChallengeService {
	return &challengeService{completions: completions}
}

func (s *challengeService) Today(now time.Time) domain.Challenge {
	return mood.ChallengeForDate(now)
}

func (s *challengeService) Complete(ctx context.Context, userID string, now time.Time) (*domain.ChallengeCompletion, error) {
	date := now.Format("2006-01-02")

	done, err := s.completions.CompletedOn(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if done {
		return nil, ErrAlreadyCompleted
	}

	ch := mood.ChallengeForDate(now)
	c := &domain.ChallengeCompletion{
		ID:             uuid.New().String(),
		UserID:         userID,
		Title:          ch.Title,
		Category:       ch.Category,
		Description:    ch.Description,
		Completed:      true,
		CompletionDate: date,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.completions.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *challengeService) CompletedToday(ctx context.Context, userID string, now time.Time) (bool, error) {
	return s.completions.CompletedOn(ctx, userID, now.Format("2006-01-02"))
}

func (s *challengeService) History(ctx context.Context, userID string) ([]*domain.ChallengeCompletion, error) {
	return s.completions.ListByUser(ctx, userID)
}
