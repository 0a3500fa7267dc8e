package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/solace/internal/companion"
	"github.com/alexanderramin/solace/internal/db"
	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/repository"
	"github.com/google/uuid"
)

// tierWindow is how much history the responder needs to place the
// conversation in a fallback tier (first turn, early, ongoing).
const tierWindow = 3

type chatService struct {
	messages  repository.ChatMessageRepo
	companion companion.Service
	uow       db.UnitOfWork
}

func NewChatService(messages repository.ChatMessageRepo, comp companion.Service, uow db.UnitOfWork) ChatService {
	return &chatService{messages: messages, companion: comp, uow: uow}
}

func (s *chatService) Send(ctx context.Context, userID, text string, mood domain.Mood) (*ChatResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	prior, err := s.messages.ListHistory(ctx, userID, tierWindow)
	if err != nil {
		return nil, err
	}
	lastReplies, err := s.messages.ListRecentBySender(ctx, userID, domain.SenderAssistant, companion.RepeatWindow)
	if err != nil {
		return nil, err
	}
	conv := companion.Conversation{Turns: len(prior)}
	for _, m := range lastReplies {
		conv.RecentReplies = append(conv.RecentReplies, m.Message)
	}

	// Reply generation may hit the network, so it stays outside the
	// transaction that persists the turn.
	reply := s.companion.Reply(ctx, text, mood, conv)

	now := time.Now().UTC()
	userMsg := &domain.ChatMessage{
		ID:        uuid.New().String(),
		UserID:    userID,
		Message:   text,
		Sender:    domain.SenderUser,
		CreatedAt: now,
	}
	assistantMsg := &domain.ChatMessage{
		ID:        uuid.New().String(),
		UserID:    userID,
		Message:   reply.Text,
		Sender:    domain.SenderAssistant,
		CreatedAt: now,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txMessages := repository.NewSQLiteChatMessageRepo(tx)
		if err := txMessages.Create(ctx, userMsg); err != nil {
			return err
		}
		return txMessages.Create(ctx, assistantMsg)
	})
	if err != nil {
		return nil, err
	}

	return &ChatResult{
		Message: assistantMsg,
		Source:  reply.Source,
		Crisis:  reply.Crisis,
	}, nil
}

func (s *chatService) History(ctx context.Context, userID string, limit int) ([]*domain.ChatMessage, error) {
	return s.messages.ListHistory(ctx, userID, limit)
}
