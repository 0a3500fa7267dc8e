package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/streak"
	"github.com/alexanderramin/solace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInLog_CreatesRow(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewCheckInService(repos.checkins)

	c, err := svc.Log(ctx, testutil.TestUserID, domain.MoodHappy)
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, domain.MoodHappy, c.Mood)

	recent, err := svc.ListRecent(ctx, testutil.TestUserID, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, c.ID, recent[0].ID)
}

func TestCheckInLog_RejectsInvalidMood(t *testing.T) {
	repos := setupRepos(t)
	svc := NewCheckInService(repos.checkins)

	_, err := svc.Log(context.Background(), testutil.TestUserID, domain.Mood("ecstatic"))
	assert.ErrorIs(t, err, ErrInvalidMood)
}

func TestCheckInStreak_ConsecutiveDays(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	now := time.Now().UTC()

	// Check-ins today, yesterday and two days ago.
	for i := 0; i < 3; i++ {
		c := testutil.NewTestCheckIn(domain.MoodNeutral, testutil.WithCheckInTime(now.AddDate(0, 0, -i)))
		require.NoError(t, repos.checkins.Create(ctx, c))
	}

	svc := NewCheckInService(repos.checkins)
	days, badge, err := svc.Streak(ctx, testutil.TestUserID, now)
	require.NoError(t, err)
	assert.Equal(t, 3, days)
	assert.Equal(t, streak.TierBronze, badge.Tier)
	assert.Equal(t, "3 Days", badge.Text)
}

func TestCheckInStreak_NoCheckIns(t *testing.T) {
	repos := setupRepos(t)
	svc := NewCheckInService(repos.checkins)

	days, badge, err := svc.Streak(context.Background(), testutil.TestUserID, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 0, days)
	assert.Equal(t, "Start Journey", badge.Text)
}

func TestCheckInStreak_IgnoresOtherUsers(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	now := time.Now().UTC()

	other := testutil.NewTestCheckIn(domain.MoodHappy,
		testutil.WithCheckInTime(now),
		testutil.WithCheckInUser("someone-else"),
	)
	require.NoError(t, repos.checkins.Create(ctx, other))

	svc := NewCheckInService(repos.checkins)
	days, _, err := svc.Streak(ctx, testutil.TestUserID, now)
	require.NoError(t, err)
	assert.Equal(t, 0, days)
}
