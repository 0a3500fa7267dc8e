package service

import (
	"context"
	"time"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/repository"
	"github.com/alexanderramin/solace/internal/streak"
	"github.com/google/uuid"
)

type checkInService struct {
	checkins repository.CheckInRepo
}

func NewCheckInService(checkins repository.CheckInRepo) CheckInService {
	return &checkInService{checkins: checkins}
}

func (s *checkInService) Log(ctx context.Context, userID string, mood domain.Mood) (*domain.MoodCheckIn, error) {
	if !mood.Valid() {
		return nil, ErrInvalidMood
	}

	c := &domain.MoodCheckIn{
		ID:        uuid.New().String(),
		UserID:    userID,
		Mood:      mood,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.checkins.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *checkInService) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.MoodCheckIn, error) {
	return s.checkins.ListRecent(ctx, userID, limit)
}

func (s *checkInService) Streak(ctx context.Context, userID string, now time.Time) (int, streak.Badge, error) {
	since := now.AddDate(0, 0, -7).UTC().Format(time.RFC3339)
	checkins, err := s.checkins.ListSince(ctx, userID, since)
	if err != nil {
		return 0, streak.Badge{}, err
	}

	times := make([]time.Time, 0, len(checkins))
	for _, c := range checkins {
		times = append(times, c.CreatedAt)
	}

	days := streak.Compute(times, now)
	return days, streak.BadgeFor(days), nil
}
