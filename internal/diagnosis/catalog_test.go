package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachdiag/internal/model"
)

func TestDefaultCatalog_Shape(t *testing.T) {
	c := DefaultCatalog()

	assert.Len(t, c.Core(), 6)
	assert.Len(t, c.Followups(), 4)
	assert.Len(t, c.Types(), 6)
	assert.Empty(t, c.Validate())

	q, ok := c.Question("learning_pace")
	require.True(t, ok)
	assert.Equal(t, model.QuestionKindFollowUp, q.Kind)
	require.NotNil(t, q.Condition.ScoreGap)
	assert.Equal(t, 3.0, q.Condition.ScoreGap.Max)

	_, ok = c.Question("no_such_question")
	assert.False(t, ok)

	typ, ok := c.Type(TypeExplorer)
	require.True(t, ok)
	assert.Equal(t, 1.5, typ.Formula[DimIntrinsicMotivation])
}

func TestDefaultCatalog_FreshValuesPerCall(t *testing.T) {
	a := DefaultCatalog()
	b := DefaultCatalog()

	a.Core()[0].ScoringWeights[model.AnswerA][DimOpenness] = 99
	assert.Equal(t, 1.0, b.Core()[0].ScoringWeights[model.AnswerA][DimOpenness])
}

func TestValidate_ReportsAuthoringErrors(t *testing.T) {
	broken := model.Question{
		ID:      "broken",
		Kind:    model.QuestionKindFollowUp,
		Options: options("a", "b", "c", "d")[:3],
		ScoringWeights: map[model.Answer]model.ScoreWeights{
			model.AnswerA: {"x": 1},
		},
		Condition: &model.Condition{
			ScoreGap: &model.GapLimit{Max: -2},
			Ranges:   map[string]model.Range{"x": model.Between(4, 1)},
		},
	}
	orphan := followQ("orphan", nil)
	dup := coreQ("c1", nil)

	c := NewCatalog(
		[]model.Question{coreQ("c1", model.ScoreWeights{"x": 1}), dup},
		[]model.Question{broken, orphan},
		[]model.DiagnosisType{{ID: "only"}},
	)

	var msgs []string
	for _, issue := range c.Validate() {
		msgs = append(msgs, issue.String())
	}

	assert.Contains(t, msgs, "c1: duplicate question id")
	assert.Contains(t, msgs, "broken: has 3 options, want 4")
	assert.Contains(t, msgs, "broken: no scoring weights for answer D")
	assert.Contains(t, msgs, "broken: scoreGap.max -2.00 is negative, condition can never hold")
	assert.Contains(t, msgs, "broken: range on x has min 4.00 > max 1.00")
	assert.Contains(t, msgs, "orphan: follow-up without condition is never asked")
	assert.Contains(t, msgs, "catalog defines 1 types, need at least 2")
	assert.Contains(t, msgs, "type only has an empty scoring formula")
}
