package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Chamz87/IBM-Capstone-SCE/internal/dashboard"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/recorder"
)

const closeGracePeriod = time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for a local dashboard.
	},
}

// Hub tracks live WebSocket callback sessions.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]*websocket.Conn
	closed   bool
	logger   *zap.Logger
}

// NewHub creates a new session hub.
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		sessions: make(map[string]*websocket.Conn),
		logger:   logger,
	}
}

// add registers conn and returns its session id. It returns false once
// CloseAll has run; the caller must then close conn itself.
func (h *Hub) add(conn *websocket.Conn) (string, bool) {
	id := uuid.NewString()
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return "", false
	}
	h.sessions[id] = conn
	h.mu.Unlock()
	h.logger.Info("session opened", zap.String("session", id), zap.String("remote", conn.RemoteAddr().String()))
	return id, true
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	conn, ok := h.sessions[id]
	delete(h.sessions, id)
	h.mu.Unlock()
	if ok {
		conn.Close()
		h.logger.Info("session closed", zap.String("session", id))
	}
}

// SessionCount returns the number of open sessions.
func (h *Hub) SessionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// CloseAll sends a close frame to every session and closes its connection.
// Each session's read loop then exits and deregisters itself. Sessions
// upgraded afterwards are refused.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true

	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for id, conn := range h.sessions {
		if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGracePeriod)); err != nil {
			h.logger.Debug("close frame", zap.String("session", id), zap.Error(err))
		}
		conn.Close()
	}
}

// handleWebSocket upgrades the connection and serves one callback session:
// every text message is an update request and gets exactly one reply.
// Requests on a session are handled in order, one at a time.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}

	id, ok := s.hub.add(conn)
	if !ok {
		msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
		conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGracePeriod))
		conn.Close()
		return
	}
	defer s.hub.remove(id)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read", zap.String("session", id), zap.Error(err))
			}
			return
		}

		var reply any
		var req dashboard.UpdateRequest
		if err := json.Unmarshal(data, &req); err != nil {
			reply = map[string]string{"error": "invalid update request: " + err.Error()}
		} else {
			reply = s.dispatch(id, recorder.TransportWS, req)
		}

		if err := conn.WriteJSON(reply); err != nil {
			s.logger.Warn("websocket write", zap.String("session", id), zap.Error(err))
			return
		}
	}
}
