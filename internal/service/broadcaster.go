package service

// Broadcaster pushes live events to whoever watches a session (avoids import cycle with ws)
type Broadcaster interface {
	BroadcastToSession(sessionID string, msgType string, payload interface{})
}

// WebSocket message types
const (
	MsgAnswerAccepted     = "answer_accepted"
	MsgDiagnosisCompleted = "diagnosis_completed"
)
