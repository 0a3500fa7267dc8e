package companion

import (
	"context"
	"strings"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/llm"
)

// Reply is a companion response with its origin.
type Reply struct {
	Text   string
	Source string // "crisis", "proxy" or "deterministic"
	Crisis bool
}

// Service produces companion replies, preferring the chat proxy when it
// is enabled and falling back to the built-in responder.
type Service interface {
	Reply(ctx context.Context, message string, mood domain.Mood, conv Conversation) *Reply
}

type service struct {
	client    llm.ChatClient // nil when the proxy is disabled
	responder *Responder
}

// NewService creates a companion Service. Pass a nil client to run
// fully offline.
func NewService(client llm.ChatClient, responder *Responder) Service {
	return &service{client: client, responder: responder}
}

func (s *service) Reply(ctx context.Context, message string, mood domain.Mood, conv Conversation) *Reply {
	// Safety check runs before everything else, including the proxy.
	if DetectsCrisis(message) {
		return &Reply{Text: EmergencyMessage, Source: "crisis", Crisis: true}
	}

	if s.client != nil {
		resp, err := s.client.Chat(ctx, llm.ChatRequest{
			Message: message,
			Mood:    string(mood),
		})
		if err == nil && strings.TrimSpace(resp.Text) != "" {
			return &Reply{Text: resp.Text, Source: "proxy"}
		}
	}

	return &Reply{Text: s.responder.Respond(message, conv), Source: "deterministic"}
}
