package companion

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/llm"
	"github.com/stretchr/testify/assert"
)

type stubChatClient struct {
	text  string
	err   error
	calls int
}

func (s *stubChatClient) Chat(_ context.Context, _ llm.ChatRequest) (*llm.ChatResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &llm.ChatResponse{Text: s.text}, nil
}

func (s *stubChatClient) Available(context.Context) bool { return true }

func newTestService(client llm.ChatClient) Service {
	return NewService(client, NewResponder(rand.New(rand.NewSource(1))))
}

func TestServiceReply_CrisisShortCircuitsProxy(t *testing.T) {
	client := &stubChatClient{text: "should never be used"}
	svc := newTestService(client)

	reply := svc.Reply(context.Background(), "I want to hurt myself", domain.MoodSad, Conversation{})

	assert.True(t, reply.Crisis)
	assert.Equal(t, "crisis", reply.Source)
	assert.Equal(t, EmergencyMessage, reply.Text)
	assert.Zero(t, client.calls, "proxy must not be consulted for crisis messages")
}

func TestServiceReply_UsesProxyWhenAvailable(t *testing.T) {
	client := &stubChatClient{text: "A warm reply from the proxy."}
	svc := newTestService(client)

	reply := svc.Reply(context.Background(), "I feel worried", domain.MoodSad, Conversation{})

	assert.Equal(t, "proxy", reply.Source)
	assert.Equal(t, "A warm reply from the proxy.", reply.Text)
	assert.Equal(t, 1, client.calls)
}

func TestServiceReply_FallsBackOnProxyError(t *testing.T) {
	client := &stubChatClient{err: errors.New("boom")}
	svc := newTestService(client)

	reply := svc.Reply(context.Background(), "I feel worried", domain.MoodSad, Conversation{})

	assert.Equal(t, "deterministic", reply.Source)
	assert.Contains(t, poolFor(t, "anxiety"), reply.Text)
}

func TestServiceReply_FallsBackOnEmptyProxyReply(t *testing.T) {
	client := &stubChatClient{text: "   "}
	svc := newTestService(client)

	reply := svc.Reply(context.Background(), "hello", domain.MoodNeutral, Conversation{})

	assert.Equal(t, "deterministic", reply.Source)
	assert.Contains(t, poolFor(t, "greeting"), reply.Text)
}

func TestServiceReply_NilClientIsOffline(t *testing.T) {
	svc := newTestService(nil)

	reply := svc.Reply(context.Background(), "feeling lonely tonight", domain.MoodSad, Conversation{})

	assert.Equal(t, "deterministic", reply.Source)
	assert.Contains(t, poolFor(t, "loneliness"), reply.Text)
}
