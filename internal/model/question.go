package model

// QuestionKind separates the fixed baseline from the adaptive pool
type QuestionKind string

const (
	QuestionKindCore     QuestionKind = "core"     // Always asked, in catalog order
	QuestionKindFollowUp QuestionKind = "followup" // Asked only while its condition holds
)

// Answer is one of the four option labels
type Answer string

const (
	AnswerA Answer = "A"
	AnswerB Answer = "B"
	AnswerC Answer = "C"
	AnswerD Answer = "D"
)

// AnswerLabels lists the labels every question must offer, in display order
var AnswerLabels = []Answer{AnswerA, AnswerB, AnswerC, AnswerD}

// IsValid reports whether a is one of A..D
func (a Answer) IsValid() bool {
	switch a {
	case AnswerA, AnswerB, AnswerC, AnswerD:
		return true
	}
	return false
}

// ScoreWeights maps a score dimension to a signed weight
type ScoreWeights map[string]float64

// Range bounds a raw-score dimension; a nil bound is open on that side
type Range struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Contains reports whether v lies within the range
func (r Range) Contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// GapLimit caps the distance between the two best type scores
type GapLimit struct {
	Max float64 `json:"max"`
}

// Condition gates a follow-up question. Every declared constraint must hold.
type Condition struct {
	Ranges   map[string]Range `json:"ranges,omitempty"`
	ScoreGap *GapLimit        `json:"scoreGap,omitempty"`
}

// Option is a labeled answer choice
type Option struct {
	Label Answer `json:"id"`
	Text  string `json:"text"`
}

// Question is an immutable catalog entry (core or follow-up)
type Question struct {
	ID             string                  `json:"id"`
	Kind           QuestionKind            `json:"questionType"`
	Text           string                  `json:"questionText"`
	Order          int                     `json:"questionOrder"`
	Options        []Option                `json:"options"`
	ScoringWeights map[Answer]ScoreWeights `json:"-"` // Never sent to respondents
	Condition      *Condition              `json:"-"` // Follow-ups only
}

// Min and Max build range bounds for catalog literals
func Min(v float64) Range { return Range{Min: &v} }
func Max(v float64) Range { return Range{Max: &v} }

// Between builds a closed range
func Between(lo, hi float64) Range { return Range{Min: &lo, Max: &hi} }
