package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/solace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodShare_CreatesPostcard(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewMoodShareService(repos.shares)

	share, err := svc.Share(ctx, testutil.TestUserID, "Feeling hopeful today", "sunset")
	require.NoError(t, err)
	assert.Equal(t, "sunset", share.BackgroundStyle)

	recent, err := svc.ListRecent(ctx, testutil.TestUserID, 5)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "Feeling hopeful today", recent[0].Message)
}

func TestMoodShare_RejectsUnknownStyle(t *testing.T) {
	repos := setupRepos(t)
	svc := NewMoodShareService(repos.shares)

	_, err := svc.Share(context.Background(), testutil.TestUserID, "hi", "plaid")
	assert.ErrorIs(t, err, ErrInvalidBackgroundStyle)
}

func TestMoodShare_RejectsEmptyMessage(t *testing.T) {
	repos := setupRepos(t)
	svc := NewMoodShareService(repos.shares)

	_, err := svc.Share(context.Background(), testutil.TestUserID, "  ", "ocean")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}
