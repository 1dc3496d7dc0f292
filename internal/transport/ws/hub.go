package ws

import (
	"encoding/json"
	"sync"

	"coachdiag/internal/logger"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgSessionSnapshot    MessageType = "session_snapshot"
	MsgAnswerAccepted     MessageType = "answer_accepted"
	MsgDiagnosisCompleted MessageType = "diagnosis_completed"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Role says who is watching a session
type Role string

const (
	RoleRespondent Role = "respondent"
	RoleCoach      Role = "coach"
)

// Hub fans session events out to every connection watching that session
type Hub struct {
	// sessionID -> watchers
	watchers map[string]map[*Connection]struct{}

	mu  sync.RWMutex
	log logger.ILogger

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection is one WebSocket client bound to a session
type Connection struct {
	SessionID string
	Role      Role
	Send      chan []byte
}

// BroadcastMessage is a message for all watchers of one session
type BroadcastMessage struct {
	SessionID string
	Message   *Message
}

func NewHub(log logger.ILogger) *Hub {
	h := &Hub{
		watchers:   make(map[string]map[*Connection]struct{}),
		log:        log,
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.watchers[conn.SessionID] == nil {
				h.watchers[conn.SessionID] = make(map[*Connection]struct{})
			}
			h.watchers[conn.SessionID][conn] = struct{}{}
			h.mu.Unlock()
			h.log.Debug("ws", "watcher connected", map[string]interface{}{"sessionId": conn.SessionID, "role": conn.Role})

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.watchers[conn.SessionID]; ok {
				if _, ok := conns[conn]; ok {
					delete(conns, conn)
					close(conn.Send)
					if len(conns) == 0 {
						delete(h.watchers, conn.SessionID)
					}
				}
			}
			h.mu.Unlock()
			h.log.Debug("ws", "watcher disconnected", map[string]interface{}{"sessionId": conn.SessionID, "role": conn.Role})

		case msg := <-h.broadcast:
			data, _ := json.Marshal(msg.Message)
			h.mu.RLock()
			for conn := range h.watchers[msg.SessionID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToSession implements service.Broadcaster
func (h *Hub) BroadcastToSession(sessionID string, msgType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.log.Warn("ws", "dropping unencodable payload", map[string]interface{}{"type": msgType, "error": err.Error()})
		return
	}
	h.broadcast <- &BroadcastMessage{
		SessionID: sessionID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// WatcherCount reports how many connections watch a session
func (h *Hub) WatcherCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.watchers[sessionID])
}
