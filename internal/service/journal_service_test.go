package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalSave_CountsWords(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewJournalService(repos.journals)

	e, err := svc.Save(ctx, testutil.TestUserID, domain.MoodSad, "today was  a long day")
	require.NoError(t, err)
	assert.Equal(t, 5, e.WordCount)
	assert.NotEmpty(t, e.ID)

	recent, err := svc.ListRecent(ctx, testutil.TestUserID, 5)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "today was  a long day", recent[0].Content)
	assert.Equal(t, 5, recent[0].WordCount)
}

func TestJournalSave_RejectsEmptyContent(t *testing.T) {
	repos := setupRepos(t)
	svc := NewJournalService(repos.journals)

	_, err := svc.Save(context.Background(), testutil.TestUserID, domain.MoodSad, "   \n\t ")
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestJournalSave_RejectsInvalidMood(t *testing.T) {
	repos := setupRepos(t)
	svc := NewJournalService(repos.journals)

	_, err := svc.Save(context.Background(), testutil.TestUserID, domain.Mood("blue"), "some words")
	assert.ErrorIs(t, err, ErrInvalidMood)
}

func TestJournalListRecent_NewestFirst(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewJournalService(repos.journals)

	_, err := svc.Save(ctx, testutil.TestUserID, domain.MoodNeutral, "first entry")
	require.NoError(t, err)
	_, err = svc.Save(ctx, testutil.TestUserID, domain.MoodNeutral, "second entry")
	require.NoError(t, err)

	recent, err := svc.ListRecent(ctx, testutil.TestUserID, 5)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "second entry", recent[0].Content)
	assert.Equal(t, "first entry", recent[1].Content)
}
