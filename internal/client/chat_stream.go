package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/ari/talentbridge/internal/domain"
	"github.com/gorilla/websocket"
)

// ChatStream delivers chat messages pushed by the backend as they are
// produced. REST remains the primary chat path; the stream is additive.
type ChatStream struct {
	conn *websocket.Conn
}

// OpenChatStream connects to the chat event socket with the current token
func (c *Client) OpenChatStream(ctx context.Context) (*ChatStream, error) {
	wsURL := strings.Replace(c.baseURL, "http", "ws", 1) + "/chat/ws"

	header := http.Header{}
	if token := c.Token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		if resp != nil {
			return nil, &APIError{
				Status:  resp.StatusCode,
				Message: "HTTP " + resp.Status,
				err:     err,
			}
		}
		return nil, wrapTransport(err)
	}
	return &ChatStream{conn: conn}, nil
}

// Next blocks until the backend pushes the next message
func (s *ChatStream) Next() (*domain.ChatMessage, error) {
	var msg domain.ChatMessage
	if err := s.conn.ReadJSON(&msg); err != nil {
		return nil, wrapTransport(err)
	}
	return &msg, nil
}

// Close shuts the stream down
func (s *ChatStream) Close() error {
	return s.conn.Close()
}
