package service

import (
	"context"

	"github.com/segmentio/ksuid"

	"medicheck/cli/internal/api"
	"medicheck/cli/internal/models"
)

// Chat carries a conversation with the backend's assistant endpoint.
// The backend is stateless, so the rolling message history lives here,
// capped at maxHistory entries.
type Chat struct {
	client         *api.Client
	model          string
	maxHistory     int
	conversationID string
	history        []models.ChatMessage
}

func NewChat(client *api.Client, model string, maxHistory int) *Chat {
	return &Chat{
		client:         client,
		model:          model,
		maxHistory:     maxHistory,
		conversationID: ksuid.New().String(),
	}
}

// ConversationID identifies this chat session in logs.
func (s *Chat) ConversationID() string {
	return s.conversationID
}

// Send posts the user message plus history and appends the reply.
// On failure the user message is not recorded, so a retry sends the
// same conversation.
func (s *Chat) Send(ctx context.Context, content string) (models.ChatMessage, error) {
	messages := append(s.trimmedHistory(), models.ChatMessage{Role: "user", Content: content})

	var reply models.ChatMessage
	err := s.client.Post(ctx, "/chat/completions", models.ChatRequest{
		Messages: messages,
		Model:    s.model,
	}, &reply)
	if err != nil {
		return models.ChatMessage{}, err
	}

	s.history = append(messages, reply)
	return reply, nil
}

func (s *Chat) trimmedHistory() []models.ChatMessage {
	if s.maxHistory > 0 && len(s.history) > s.maxHistory {
		return s.history[len(s.history)-s.maxHistory:]
	}
	return s.history
}
