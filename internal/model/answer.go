package model

// Progress is the respondent-facing position within the questionnaire.
// Total can move between answers as follow-ups become (in)eligible.
type Progress struct {
	Answered   int `json:"currentQuestion"`
	Total      int `json:"totalQuestions"`
	Percentage int `json:"percentage"`
}

// NewProgress builds a progress block; percentage is capped at 100
func NewProgress(answered, total int) Progress {
	p := Progress{Answered: answered, Total: total}
	if total > 0 {
		p.Percentage = answered * 100 / total
		if p.Percentage > 100 {
			p.Percentage = 100
		}
	}
	return p
}

// StartSessionRequest is the body of POST /v1/diagnosis/sessions
type StartSessionRequest struct {
	UserID string `json:"userId,omitempty" validate:"omitempty,max=128"`
}

// StartSessionResponse is returned when a session is created
type StartSessionResponse struct {
	SessionID     string    `json:"sessionId"`
	Token         string    `json:"token"`
	FirstQuestion *Question `json:"firstQuestion"`
	Progress      Progress  `json:"progress"`
}

// SubmitAnswerRequest is the body of POST /v1/diagnosis/sessions/{id}/answers
type SubmitAnswerRequest struct {
	QuestionID   string `json:"questionId" validate:"required"`
	Answer       Answer `json:"answer" validate:"required,oneof=A B C D"`
	ResponseTime int64  `json:"responseTime" validate:"gte=0"`
}

// SubmitAnswerResponse tells the client what to ask next
type SubmitAnswerResponse struct {
	NextQuestion *Question `json:"nextQuestion"`
	IsCompleted  bool      `json:"isCompleted"`
	Progress     Progress  `json:"progress"`
}

// SessionView is the respondent's view of an in-flight session
type SessionView struct {
	SessionID       string        `json:"sessionId"`
	Status          SessionStatus `json:"status"`
	CurrentQuestion *Question     `json:"currentQuestion"`
	Progress        Progress      `json:"progress"`
}
