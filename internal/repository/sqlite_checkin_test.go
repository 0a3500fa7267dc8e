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

func TestCheckInRepo_RoundTripOrdering(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCheckInRepo(db)
	ctx := context.Background()

	now := time.Now().UTC()
	older := testutil.NewTestCheckIn(domain.MoodSad, testutil.WithCheckInTime(now.Add(-time.Hour)))
	newest := testutil.NewTestCheckIn(domain.MoodHappy, testutil.WithCheckInTime(now))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newest))

	list, err := repo.ListRecent(ctx, testutil.TestUserID, 30)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.MoodHappy, list[0].Mood, "most recent check-in first")
	assert.Equal(t, domain.MoodSad, list[1].Mood)
}

func TestCheckInRepo_ScopedToUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCheckInRepo(db)
	ctx := context.Background()

	mine := testutil.NewTestCheckIn(domain.MoodNeutral)
	theirs := testutil.NewTestCheckIn(domain.MoodVeryHappy, testutil.WithCheckInUser("someone-else"))
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, theirs))

	list, err := repo.ListRecent(ctx, testutil.TestUserID, 30)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, testutil.TestUserID, list[0].UserID)
}

func TestCheckInRepo_ListSince(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCheckInRepo(db)
	ctx := context.Background()

	now := time.Now().UTC()
	old := testutil.NewTestCheckIn(domain.MoodSad, testutil.WithCheckInTime(now.AddDate(0, 0, -10)))
	recent := testutil.NewTestCheckIn(domain.MoodHappy, testutil.WithCheckInTime(now.AddDate(0, 0, -2)))
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, recent))

	since := now.AddDate(0, 0, -7).Format(time.RFC3339)
	list, err := repo.ListSince(ctx, testutil.TestUserID, since)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, recent.ID, list[0].ID)
}

func TestCheckInRepo_RejectsInvalidMood(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCheckInRepo(db)
	ctx := context.Background()

	bad := testutil.NewTestCheckIn(domain.Mood("ecstatic"))
	assert.Error(t, repo.Create(ctx, bad))
}
