package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/repository"
)

type appStateService struct {
	states repository.AppStateRepo
}

func NewAppStateService(states repository.AppStateRepo) AppStateService {
	return &appStateService{states: states}
}

// Restore returns the saved session state, or a zero state when none
// was ever persisted.
func (s *appStateService) Restore(ctx context.Context) (*domain.AppState, error) {
	state, err := s.states.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return &domain.AppState{ID: "default"}, nil
	}
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (s *appStateService) Persist(ctx context.Context, screen string, mood domain.Mood) error {
	return s.states.Save(ctx, &domain.AppState{
		ID:           "default",
		Screen:       screen,
		SelectedMood: mood,
		UpdatedAt:    time.Now().UTC(),
	})
}
