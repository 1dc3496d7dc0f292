package diagnosis

import (
	"sort"

	"coachdiag/internal/model"
)

// TypeScores is an archetype score vector in catalog type order
type TypeScores []model.TypeScore

// RawScores folds responses into per-dimension evidence. Responses that point
// at questions or answers the catalog no longer knows are skipped, so catalog
// drift never breaks historical sessions.
func (c *Catalog) RawScores(responses []model.Response) map[string]float64 {
	scores := make(map[string]float64)
	for _, r := range responses {
		q, ok := c.Question(r.QuestionID)
		if !ok {
			continue
		}
		weights, ok := q.ScoringWeights[r.Answer]
		if !ok {
			continue
		}
		for dim, w := range weights {
			scores[dim] += w
		}
	}
	return scores
}

// TypeScores projects raw scores onto every archetype formula. Results are
// clamped at zero; negative fit carries no meaning for classification.
func (c *Catalog) TypeScores(raw map[string]float64) TypeScores {
	out := make(TypeScores, 0, len(c.types))
	for _, t := range c.types {
		out = append(out, model.TypeScore{TypeID: t.ID, Score: project(raw, t.Formula)})
	}
	return out
}

// project sums in sorted dimension order so repeated calls are bit-identical
func project(raw map[string]float64, formula model.ScoreWeights) float64 {
	dims := make([]string, 0, len(formula))
	for dim := range formula {
		dims = append(dims, dim)
	}
	sort.Strings(dims)

	var score float64
	for _, dim := range dims {
		score += raw[dim] * formula[dim]
	}
	if score < 0 {
		return 0
	}
	return score
}

// Ranked returns a copy sorted by score, highest first. Ties keep catalog order.
func (ts TypeScores) Ranked() TypeScores {
	ranked := append(TypeScores(nil), ts...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Gap is the distance between the two best scores; ok is false with fewer than two
func (ts TypeScores) Gap() (gap float64, ok bool) {
	if len(ts) < 2 {
		return 0, false
	}
	ranked := ts.Ranked()
	return ranked[0].Score - ranked[1].Score, true
}

// Map converts the vector to a typeId -> score map for serialization
func (ts TypeScores) Map() map[string]float64 {
	m := make(map[string]float64, len(ts))
	for _, s := range ts {
		m[s.TypeID] = s.Score
	}
	return m
}

// Score returns the score for typeID, or 0 when absent
func (ts TypeScores) Score(typeID string) float64 {
	for _, s := range ts {
		if s.TypeID == typeID {
			return s.Score
		}
	}
	return 0
}
