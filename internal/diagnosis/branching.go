package diagnosis

import "coachdiag/internal/model"

// NextQuestion decides what to ask after the given responses. The core phase
// is always finished in order first; after that the first eligible follow-up
// not yet answered wins. A nil result means the questionnaire is complete.
func (c *Catalog) NextQuestion(responses []model.Response, currentIndex int) *model.Question {
	if currentIndex < len(c.core) {
		if currentIndex < 0 {
			currentIndex = 0
		}
		return &c.core[currentIndex]
	}

	raw := c.RawScores(responses)
	typeScores := c.TypeScores(raw)
	answered := answeredSet(responses)

	for i := range c.followups {
		q := &c.followups[i]
		if answered[q.ID] {
			continue
		}
		if Eligible(q.Condition, raw, typeScores) {
			return q
		}
	}
	return nil
}

// ProjectedTotal is the core count plus the follow-ups that are eligible and
// unanswered right now. It may rise or fall between answers.
func (c *Catalog) ProjectedTotal(responses []model.Response) int {
	raw := c.RawScores(responses)
	typeScores := c.TypeScores(raw)
	answered := answeredSet(responses)

	total := len(c.core)
	for i := range c.followups {
		q := &c.followups[i]
		if !answered[q.ID] && Eligible(q.Condition, raw, typeScores) {
			total++
		}
	}
	return total
}

// Eligible evaluates a follow-up condition. A nil condition never holds, and
// malformed constraints (negative gap, min above max) simply fail.
func Eligible(cond *model.Condition, raw map[string]float64, typeScores TypeScores) bool {
	if cond == nil {
		return false
	}

	if cond.ScoreGap != nil {
		gap, ok := typeScores.Gap()
		if !ok || gap > cond.ScoreGap.Max {
			return false
		}
	}

	for dim, r := range cond.Ranges {
		if !r.Contains(raw[dim]) {
			return false
		}
	}
	return true
}

func answeredSet(responses []model.Response) map[string]bool {
	set := make(map[string]bool, len(responses))
	for _, r := range responses {
		set[r.QuestionID] = true
	}
	return set
}
