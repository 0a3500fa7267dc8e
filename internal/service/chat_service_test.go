package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/alexanderramin/solace/internal/companion"
	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOfflineCompanion() companion.Service {
	return companion.NewService(nil, companion.NewResponder(rand.New(rand.NewSource(7))))
}

func TestChatSend_PersistsBothTurns(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewChatService(repos.messages, newOfflineCompanion(), repos.uow)

	result, err := svc.Send(ctx, testutil.TestUserID, "hello there", domain.MoodNeutral)
	require.NoError(t, err)
	assert.Equal(t, "deterministic", result.Source)
	assert.False(t, result.Crisis)
	assert.NotEmpty(t, result.Message.Message)

	history, err := svc.History(ctx, testutil.TestUserID, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.SenderUser, history[0].Sender)
	assert.Equal(t, "hello there", history[0].Message)
	assert.Equal(t, domain.SenderAssistant, history[1].Sender)
	assert.Equal(t, result.Message.Message, history[1].Message)
}

func TestChatSend_ConsecutiveRepliesDoNotRepeat(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewChatService(repos.messages, newOfflineCompanion(), repos.uow)

	// The stored assistant reply feeds the repeat filter, so asking the
	// same thing again must draw a different candidate from the pool.
	first, err := svc.Send(ctx, testutil.TestUserID, "I feel anxious today", domain.MoodSad)
	require.NoError(t, err)
	second, err := svc.Send(ctx, testutil.TestUserID, "I feel anxious today", domain.MoodSad)
	require.NoError(t, err)

	assert.NotEqual(t, first.Message.Message, second.Message.Message)
}

func TestChatSend_EmptyMessageRejected(t *testing.T) {
	repos := setupRepos(t)
	svc := NewChatService(repos.messages, newOfflineCompanion(), repos.uow)

	_, err := svc.Send(context.Background(), testutil.TestUserID, "   ", domain.MoodNeutral)
	assert.ErrorIs(t, err, ErrEmptyMessage)

	history, err := svc.History(context.Background(), testutil.TestUserID, 10)
	require.NoError(t, err)
	assert.Empty(t, history, "rejected sends must not persist anything")
}

func TestChatSend_CrisisReturnsEmergencyMessage(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewChatService(repos.messages, newOfflineCompanion(), repos.uow)

	result, err := svc.Send(ctx, testutil.TestUserID, "I want to hurt myself", domain.MoodSad)
	require.NoError(t, err)
	assert.True(t, result.Crisis)
	assert.Equal(t, companion.EmergencyMessage, result.Message.Message)

	// Both the user message and the emergency reply are persisted.
	history, err := svc.History(ctx, testutil.TestUserID, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, companion.EmergencyMessage, history[1].Message)
}

func TestChatSend_RepliesVaryAcrossTurns(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewChatService(repos.messages, newOfflineCompanion(), repos.uow)

	first, err := svc.Send(ctx, testutil.TestUserID, "I feel anxious", domain.MoodSad)
	require.NoError(t, err)
	second, err := svc.Send(ctx, testutil.TestUserID, "still feeling anxious", domain.MoodSad)
	require.NoError(t, err)

	assert.NotEqual(t, first.Message.Message, second.Message.Message,
		"consecutive replies from the same pool must differ")
}

func TestChatHistory_RespectsLimit(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewChatService(repos.messages, newOfflineCompanion(), repos.uow)

	for i := 0; i < 3; i++ {
		_, err := svc.Send(ctx, testutil.TestUserID, "hello again", domain.MoodNeutral)
		require.NoError(t, err)
	}

	history, err := svc.History(ctx, testutil.TestUserID, 2)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
