package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/repository"
	"github.com/google/uuid"
)

type profileService struct {
	profiles repository.UserProfileRepo
}

func NewProfileService(profiles repository.UserProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context) (*domain.UserProfile, error) {
	return s.profiles.Get(ctx)
}

func (s *profileService) SetNickname(ctx context.Context, nickname string) (*domain.UserProfile, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return nil, ErrEmptyNickname
	}

	now := time.Now().UTC()
	p, err := s.profiles.Get(ctx)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		p = &domain.UserProfile{
			ID:        uuid.New().String(),
			CreatedAt: now,
		}
	case err != nil:
		return nil, err
	}

	p.Nickname = nickname
	p.UpdatedAt = now
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
