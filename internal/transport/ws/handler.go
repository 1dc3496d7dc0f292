package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"coachdiag/internal/logger"
	"coachdiag/internal/service"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for dev
	},
}

// Handler upgrades session watchers to WebSocket connections
type Handler struct {
	hub     *Hub
	authSvc *service.AuthService
	diagSvc *service.DiagnosisService
	log     logger.ILogger
}

func NewHandler(hub *Hub, authSvc *service.AuthService, diagSvc *service.DiagnosisService, log logger.ILogger) *Handler {
	return &Handler{
		hub:     hub,
		authSvc: authSvc,
		diagSvc: diagSvc,
		log:     log,
	}
}

// SessionWS handles GET /v1/ws/diagnosis/sessions/{id}?token=...
// The token is either the respondent's session token or a coach token.
func (h *Handler) SessionWS(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	token := r.URL.Query().Get("token")

	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	role, ok := h.authorize(token, sessionID)
	if !ok {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	view, err := h.diagSvc.GetSession(r.Context(), sessionID)
	if err != nil {
		http.Error(w, "this diagnosis session is invalid or finished", http.StatusNotFound)
		return
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws", "upgrade failed", map[string]interface{}{"error": err.Error()})
		return
	}

	conn := &Connection{
		SessionID: sessionID,
		Role:      role,
		Send:      make(chan []byte, 256),
	}

	// queued before registering so it precedes any live event
	payload, _ := json.Marshal(view)
	snapshot, _ := json.Marshal(&Message{Type: MsgSessionSnapshot, Payload: payload})
	conn.Send <- snapshot

	h.hub.Register(conn)

	go h.writePump(wsConn, conn)
	go h.readPump(wsConn, conn)
}

func (h *Handler) authorize(token, sessionID string) (Role, bool) {
	if claims, err := h.authSvc.ValidateSessionToken(token); err == nil {
		return RoleRespondent, claims.SessionID == sessionID
	}
	if _, err := h.authSvc.ValidateCoachToken(token); err == nil {
		return RoleCoach, true
	}
	return "", false
}

func (h *Handler) readPump(wsConn *websocket.Conn, conn *Connection) {
	defer func() {
		h.hub.Unregister(conn)
		wsConn.Close()
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := wsConn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Warn("ws", "read error", map[string]interface{}{"sessionId": conn.SessionID, "error": err.Error()})
			}
			break
		}
		// watchers only listen; inbound frames just keep the connection alive
	}
}

func (h *Handler) writePump(wsConn *websocket.Conn, conn *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := wsConn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
