package client

import (
	"context"
	"net/http"

	"github.com/ari/talentbridge/internal/domain"
)

type chatMessageRequest struct {
	Message string `json:"message"`
}

// SendChatMessage sends a message to the career assistant and returns
// its reply.
func (c *Client) SendChatMessage(ctx context.Context, message string) (*domain.ChatMessage, error) {
	var reply domain.ChatMessage
	err := c.do(ctx, http.MethodPost, "/chat/message", chatMessageRequest{Message: message}, &reply)
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

// ChatHistory fetches the caller's conversation so far
func (c *Client) ChatHistory(ctx context.Context) ([]domain.ChatMessage, error) {
	var history []domain.ChatMessage
	if err := c.do(ctx, http.MethodGet, "/chat/history", nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// ChatSuggestions fetches prompt suggestions for starting a conversation
func (c *Client) ChatSuggestions(ctx context.Context) ([]string, error) {
	var suggestions []string
	if err := c.do(ctx, http.MethodGet, "/chat/suggestions", nil, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}
