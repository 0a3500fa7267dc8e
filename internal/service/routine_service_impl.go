package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/repository"
	"github.com/google/uuid"
)

type routineService struct {
	entries repository.RoutineRepo
}

func NewRoutineService(entries repository.RoutineRepo) RoutineService {
	return &routineService{entries: entries}
}

func (s *routineService) Add(ctx context.Context, userID, activity, entryDate, notes string) (*domain.RoutineEntry, error) {
	if strings.TrimSpace(activity) == "" {
		return nil, ErrEmptyActivity
	}
	if entryDate == "" {
		entryDate = time.Now().UTC().Format("2006-01-02")
	}

	e := &domain.RoutineEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Activity:  activity,
		EntryDate: entryDate,
		Completed: false,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.entries.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *routineService) ListForDate(ctx context.Context, userID, entryDate string) ([]*domain.RoutineEntry, error) {
	return s.entries.ListByDate(ctx, userID, entryDate)
}

func (s *routineService) Toggle(ctx context.Context, userID, id string) (*domain.RoutineEntry, error) {
	e, err := s.entries.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	e.Completed = !e.Completed
	if err := s.entries.SetCompleted(ctx, userID, id, e.Completed); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *routineService) Remove(ctx context.Context, userID, id string) error {
	return s.entries.Delete(ctx, userID, id)
}
