package events

import "time"

const SubjectDiagnosisCompleted = "diagnosis.completed"

// Event is anything the publisher can put on the bus. EventType doubles as the
// NATS subject.
type Event interface {
	EventType() string
	Payload() interface{}
	Timestamp() time.Time
}

type DiagnosisCompletedPayload struct {
	SessionID   string    `json:"sessionId"`
	UserID      string    `json:"userId,omitempty"`
	ResultType  string    `json:"resultType"`
	Confidence  int       `json:"confidence"`
	CompletedAt time.Time `json:"completedAt"`
}

// DiagnosisCompleted lets downstream services (the user profile) record the
// archetype without polling the result endpoint.
type DiagnosisCompleted struct {
	Data DiagnosisCompletedPayload
}

func (e DiagnosisCompleted) EventType() string    { return SubjectDiagnosisCompleted }
func (e DiagnosisCompleted) Payload() interface{} { return e.Data }
func (e DiagnosisCompleted) Timestamp() time.Time { return e.Data.CompletedAt }
