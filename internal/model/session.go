package model

import "time"

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
)

// Response is one answered question inside a session
type Response struct {
	QuestionID   string    `json:"questionId" bson:"questionId"`
	Answer       Answer    `json:"answer" bson:"answer"`
	ResponseTime int64     `json:"responseTime" bson:"responseTime"` // milliseconds
	AnsweredAt   time.Time `json:"answeredAt" bson:"answeredAt"`
}

// DiagnosisSession is one diagnosis attempt, persisted as a single document
type DiagnosisSession struct {
	ID                   string             `json:"id" bson:"_id"`
	UserID               string             `json:"userId,omitempty" bson:"userId,omitempty"`
	Status               SessionStatus      `json:"status" bson:"status"`
	Responses            []Response         `json:"responses" bson:"responses"`
	CurrentQuestionIndex int                `json:"currentQuestionIndex" bson:"currentQuestionIndex"`
	TotalQuestions       int                `json:"totalQuestions" bson:"totalQuestions"`
	RawScores            map[string]float64 `json:"rawScores" bson:"rawScores"`
	ResultType           string             `json:"resultType,omitempty" bson:"resultType,omitempty"`
	ConfidenceScore      *int               `json:"confidenceScore,omitempty" bson:"confidenceScore,omitempty"`
	StartedAt            time.Time          `json:"startedAt" bson:"startedAt"`
	CompletedAt          *time.Time         `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	LastActiveAt         time.Time          `json:"lastActiveAt" bson:"lastActiveAt"`
	CreatedAt            time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// IsCompleted reports whether the session reached its terminal state
func (s *DiagnosisSession) IsCompleted() bool {
	return s.Status == SessionCompleted
}

// HasResponse reports whether questionID was already answered
func (s *DiagnosisSession) HasResponse(questionID string) (Response, bool) {
	for _, r := range s.Responses {
		if r.QuestionID == questionID {
			return r, true
		}
	}
	return Response{}, false
}

// Clone returns a deep copy so stores never share slices or maps with callers
func (s *DiagnosisSession) Clone() *DiagnosisSession {
	c := *s
	c.Responses = append([]Response(nil), s.Responses...)
	if s.RawScores != nil {
		c.RawScores = make(map[string]float64, len(s.RawScores))
		for k, v := range s.RawScores {
			c.RawScores[k] = v
		}
	}
	if s.ConfidenceScore != nil {
		v := *s.ConfidenceScore
		c.ConfidenceScore = &v
	}
	if s.CompletedAt != nil {
		t := *s.CompletedAt
		c.CompletedAt = &t
	}
	return &c
}
