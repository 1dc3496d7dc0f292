package diagnosis

import (
	"time"

	"coachdiag/internal/model"
)

// answerAll builds responses for the given questions, one answer label per
// question, with a fixed response time.
func answerAll(questions []model.Question, answers string, ms int64) []model.Response {
	out := make([]model.Response, 0, len(answers))
	for i, a := range answers {
		out = append(out, model.Response{
			QuestionID:   questions[i].ID,
			Answer:       model.Answer(string(a)),
			ResponseTime: ms,
			AnsweredAt:   time.Date(2026, 1, 1, 0, 0, i, 0, time.UTC),
		})
	}
	return out
}

func fourWay(a model.ScoreWeights) map[model.Answer]model.ScoreWeights {
	return map[model.Answer]model.ScoreWeights{
		model.AnswerA: a,
		model.AnswerB: {},
		model.AnswerC: {},
		model.AnswerD: {},
	}
}

func coreQ(id string, a model.ScoreWeights) model.Question {
	return model.Question{
		ID:             id,
		Kind:           model.QuestionKindCore,
		Options:        options("a", "b", "c", "d"),
		ScoringWeights: fourWay(a),
	}
}

func followQ(id string, cond *model.Condition) model.Question {
	return model.Question{
		ID:             id,
		Kind:           model.QuestionKindFollowUp,
		Options:        options("a", "b", "c", "d"),
		ScoringWeights: fourWay(model.ScoreWeights{"z": 1}),
		Condition:      cond,
	}
}

// decisiveCatalog answers "AAAAAA" into {intrinsic: 8, openness: 6, autonomy: 5},
// which scores explorer 25.8 against strategist 14.0.
func decisiveCatalog() *Catalog {
	core := []model.Question{
		coreQ("c1", model.ScoreWeights{"intrinsic": 3}),
		coreQ("c2", model.ScoreWeights{"intrinsic": 3, "openness": 2}),
		coreQ("c3", model.ScoreWeights{"openness": 2, "autonomy": 2}),
		coreQ("c4", model.ScoreWeights{"autonomy": 3}),
		coreQ("c5", model.ScoreWeights{"intrinsic": 2, "openness": 2}),
		coreQ("c6", model.ScoreWeights{}),
	}
	followups := []model.Question{
		followQ("close_call", &model.Condition{ScoreGap: &model.GapLimit{Max: 3}}),
	}
	types := []model.DiagnosisType{
		{ID: "explorer", Formula: model.ScoreWeights{"intrinsic": 1.5, "openness": 1.3, "autonomy": 1.2}},
		{ID: "strategist", Formula: model.ScoreWeights{"intrinsic": 1, "openness": 1}},
		{ID: "partner", Formula: model.ScoreWeights{"relatedness": 1}},
	}
	return NewCatalog(core, followups, types)
}

// tieCatalog answers "AAAAAA" into alpha 20 and beta 19.
func tieCatalog() *Catalog {
	core := []model.Question{
		coreQ("t1", model.ScoreWeights{"x": 20, "y": 19}),
		coreQ("t2", model.ScoreWeights{}),
		coreQ("t3", model.ScoreWeights{}),
		coreQ("t4", model.ScoreWeights{}),
		coreQ("t5", model.ScoreWeights{}),
		coreQ("t6", model.ScoreWeights{}),
	}
	followups := []model.Question{
		followQ("needs_z", &model.Condition{Ranges: map[string]model.Range{"z": model.Min(1)}}),
		followQ("tiebreak", &model.Condition{ScoreGap: &model.GapLimit{Max: 3}}),
	}
	types := []model.DiagnosisType{
		{ID: "alpha", Formula: model.ScoreWeights{"x": 1}},
		{ID: "beta", Formula: model.ScoreWeights{"y": 1}},
	}
	return NewCatalog(core, followups, types)
}
