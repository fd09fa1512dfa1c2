package stubapi

import (
	"net/http"
	"sync"

	"github.com/ari/talentbridge/internal/domain"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// chatHub pushes chat messages to each user's open sockets
type chatHub struct {
	mu    sync.Mutex
	conns map[uuid.UUID]map[*websocket.Conn]bool
}

func newChatHub() *chatHub {
	return &chatHub{conns: make(map[uuid.UUID]map[*websocket.Conn]bool)}
}

func (h *chatHub) add(userID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[userID] == nil {
		h.conns[userID] = make(map[*websocket.Conn]bool)
	}
	h.conns[userID][conn] = true
}

func (h *chatHub) remove(userID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns[userID], conn)
	conn.Close()
}

// broadcast writes the message to every socket the user has open.
// Sockets that fail are dropped.
func (h *chatHub) broadcast(userID uuid.UUID, msg domain.ChatMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns[userID] {
		if err := conn.WriteJSON(msg); err != nil {
			delete(h.conns[userID], conn)
			conn.Close()
		}
	}
}

// handleChatSocket upgrades the connection and holds it open for pushes
func (s *Server) handleChatSocket(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.hub.add(user.ID, conn)

	// Reader loop exists only to detect the close
	go func() {
		defer s.hub.remove(user.ID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
