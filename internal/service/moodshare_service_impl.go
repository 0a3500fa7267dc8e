package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/repository"
	"github.com/google/uuid"
)

type moodShareService struct {
	shares repository.MoodShareRepo
}

func NewMoodShareService(shares repository.MoodShareRepo) MoodShareService {
	return &moodShareService{shares: shares}
}

func (s *moodShareService) Share(ctx context.Context, userID, message, backgroundStyle string) (*domain.MoodShare, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}
	if !domain.ValidBackgroundStyle(backgroundStyle) {
		return nil, ErrInvalidBackgroundStyle
	}

	share := &domain.MoodShare{
		ID:              uuid.New().String(),
		UserID:          userID,
		Message:         message,
		BackgroundStyle: backgroundStyle,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.shares.Create(ctx, share); err != nil {
		return nil, err
	}
	return share, nil
}

func (s *moodShareService) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.MoodShare, error) {
	return s.shares.ListRecent(ctx, userID, limit)
}
