package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChatSender identifies which side of the conversation produced a message
type ChatSender string

const (
	ChatSenderUser      ChatSender = "user"
	ChatSenderAssistant ChatSender = "assistant"
)

// ChatMessage is one entry in the career-assistant conversation
type ChatMessage struct {
	ID        uuid.UUID  `json:"id"`
	Sender    ChatSender `json:"sender"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
}
