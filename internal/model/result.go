package model

import "time"

// CoachingStyle describes how the AI coach should talk to a given archetype
type CoachingStyle struct {
	CommunicationStyle string   `json:"communicationStyle"`
	LanguagePatterns   []string `json:"languagePatterns"`
	MotivationApproach string   `json:"motivationApproach"`
	LearningStyle      string   `json:"learningStyle"`
}

// DiagnosisType is one learning-style archetype
type DiagnosisType struct {
	ID                    string        `json:"id"`
	DisplayName           string        `json:"displayName"`
	ScientificName        string        `json:"scientificName"`
	Description           string        `json:"description"`
	Characteristics       []string      `json:"characteristics"`
	Strengths             []string      `json:"strengths"`
	Weaknesses            []string      `json:"weaknesses,omitempty"`
	RecommendedStrategies []string      `json:"recommendedStrategies,omitempty"`
	CoachingStyle         CoachingStyle `json:"aiCoachingStyle"`
	Formula               ScoreWeights  `json:"-"` // raw dimension -> linear weight
}

// TypeScore is one archetype's projected score
type TypeScore struct {
	TypeID string  `json:"typeId"`
	Score  float64 `json:"score"`
}

// DiagnosisResult is the read-only projection of a completed session
type DiagnosisResult struct {
	SessionID      string             `json:"sessionId"`
	UserID         string             `json:"userId,omitempty"`
	PrimaryType    *DiagnosisType     `json:"primaryType"`
	SecondaryType  *DiagnosisType     `json:"secondaryType,omitempty"`
	Confidence     int                `json:"confidence"`
	Scores         map[string]float64 `json:"scores"`
	RawScores      map[string]float64 `json:"rawScores"`
	CompletedAt    time.Time          `json:"completedAt"`
	TotalQuestions int                `json:"totalQuestions"` // responses given
	ResponseTime   int64              `json:"responseTime"`   // summed milliseconds
}

// TypeCount is one bucket of the primary-type distribution
type TypeCount struct {
	TypeID string `json:"typeId"`
	Count  int64  `json:"count"`
}
