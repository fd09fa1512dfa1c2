package stubapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ari/talentbridge/internal/domain"
	"github.com/google/uuid"
)

type chatMessageRequest struct {
	Message string `json:"message"`
}

var chatSuggestions = []string{
	"How should I prepare for a technical interview?",
	"Review my resume summary",
	"What skills are in demand for backend roles?",
	"Help me write a follow-up email after an interview",
}

func (s *Server) handleChatMessage(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r.Context())

	var req chatMessageRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondError(w, http.StatusBadRequest, "Message is required")
		return
	}

	now := time.Now()
	question := domain.ChatMessage{
		ID:        uuid.New(),
		Sender:    domain.ChatSenderUser,
		Content:   req.Message,
		CreatedAt: now,
	}
	reply := domain.ChatMessage{
		ID:        uuid.New(),
		Sender:    domain.ChatSenderAssistant,
		Content:   cannedReply(req.Message),
		CreatedAt: now,
	}
	s.store.appendChat(user.ID, question, reply)

	// Open sockets see both sides of the exchange as they happen.
	s.hub.broadcast(user.ID, question)
	s.hub.broadcast(user.ID, reply)

	respondData(w, http.StatusOK, reply)
}

// cannedReply produces a deterministic assistant answer for dev flows
func cannedReply(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "interview"):
		return "Practice describing two projects end to end, and prepare questions about the team's roadmap."
	case strings.Contains(lower, "resume"):
		return "Lead with measurable outcomes and mirror the language of the posting you are targeting."
	default:
		return fmt.Sprintf("Here is a starting point for %q: break the goal into concrete weekly steps.", firstLine(message))
	}
}

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r.Context())
	respondData(w, http.StatusOK, s.store.chatHistory(user.ID))
}

func (s *Server) handleChatSuggestions(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, chatSuggestions)
}
