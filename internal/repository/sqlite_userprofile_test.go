package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfileRepo_GetNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteUserProfileRepo(db)

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserProfileRepo_UpsertAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteUserProfileRepo(db)
	ctx := context.Background()

	now := time.Now().UTC()
	p := &domain.UserProfile{ID: "default", Nickname: "Sam", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Upsert(ctx, p))

	fetched, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sam", fetched.Nickname)

	// Nickname update replaces the row.
	p.Nickname = "Sammy"
	p.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, repo.Upsert(ctx, p))

	fetched, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sammy", fetched.Nickname)
}

func TestAppStateRepo_SaveAndRestore(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAppStateRepo(db)
	ctx := context.Background()

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	state := &domain.AppState{
		Screen:       "activities",
		SelectedMood: domain.MoodHappy,
		UpdatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.Save(ctx, state))

	restored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "activities", restored.Screen)
	assert.Equal(t, domain.MoodHappy, restored.SelectedMood)
}
