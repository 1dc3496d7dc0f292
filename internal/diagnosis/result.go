package diagnosis

import (
	"time"

	"coachdiag/internal/model"
)

// secondaryThreshold is the share of the primary score a runner-up must beat
const secondaryThreshold = 0.8

// Outcome is what gets persisted when a session completes
type Outcome struct {
	RawScores  map[string]float64
	TypeScores TypeScores
	PrimaryID  string
	Confidence int
}

// Finalize scores a finished response list one last time and classifies it
func (c *Catalog) Finalize(responses []model.Response) Outcome {
	raw := c.RawScores(responses)
	typeScores := c.TypeScores(raw)

	var primary string
	if ranked := typeScores.Ranked(); len(ranked) > 0 {
		primary = ranked[0].TypeID
	}

	return Outcome{
		RawScores:  raw,
		TypeScores: typeScores,
		PrimaryID:  primary,
		Confidence: Confidence(responses, typeScores),
	}
}

// Compose builds the read-side result for a completed session. The second
// ranked type is surfaced only when it beats 80% of the primary's score.
// ok is false when the session is not completed or its type left the catalog.
func (c *Catalog) Compose(s *model.DiagnosisSession) (*model.DiagnosisResult, bool) {
	if !s.IsCompleted() || s.ResultType == "" {
		return nil, false
	}
	primary, ok := c.Type(s.ResultType)
	if !ok {
		return nil, false
	}

	typeScores := c.TypeScores(s.RawScores)
	primaryScore := typeScores.Score(primary.ID)

	var secondary *model.DiagnosisType
	for _, ts := range typeScores.Ranked() {
		if ts.TypeID == primary.ID {
			continue
		}
		if ts.Score > primaryScore*secondaryThreshold {
			secondary, _ = c.Type(ts.TypeID)
		}
		break
	}

	var totalTime int64
	for _, r := range s.Responses {
		totalTime += r.ResponseTime
	}

	confidence := 0
	if s.ConfidenceScore != nil {
		confidence = *s.ConfidenceScore
	}
	completedAt := s.UpdatedAt
	if s.CompletedAt != nil {
		completedAt = *s.CompletedAt
	}

	raw := make(map[string]float64, len(s.RawScores))
	for k, v := range s.RawScores {
		raw[k] = v
	}

	return &model.DiagnosisResult{
		SessionID:      s.ID,
		UserID:         s.UserID,
		PrimaryType:    primary,
		SecondaryType:  secondary,
		Confidence:     confidence,
		Scores:         typeScores.Map(),
		RawScores:      raw,
		CompletedAt:    completedAt.UTC().Truncate(time.Millisecond),
		TotalQuestions: len(s.Responses),
		ResponseTime:   totalTime,
	}, true
}
