package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"coachdiag/internal/model"
)

func responsesOf(answers string, times ...int64) []model.Response {
	out := make([]model.Response, len(answers))
	for i, a := range answers {
		out[i] = model.Response{
			QuestionID:   string(rune('a' + i)),
			Answer:       model.Answer(string(a)),
			ResponseTime: times[i%len(times)],
		}
	}
	return out
}

func scores(vals ...float64) TypeScores {
	ts := make(TypeScores, len(vals))
	for i, v := range vals {
		ts[i] = model.TypeScore{TypeID: string(rune('p' + i)), Score: v}
	}
	return ts
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		name      string
		responses []model.Response
		scores    TypeScores
		want      int
	}{
		{"steady times, clear gap", responsesOf("ABCD", 2000), scores(10, 4), 96},
		{"maximum", responsesOf("ABCDAB", 2000), scores(30, 5), 98},
		{"fractional terms round", responsesOf("AB", 1000, 3000), scores(20, 19), 93},
		{"no responses", nil, nil, 93},
		{"single response straight-lined", responsesOf("A", 5000), scores(0, 0), 88},
		{"extreme variance and straight-lining", responsesOf("AA", 0, 100000), scores(1, 1), 80},
		{"share of exactly 0.8 is not penalised", responsesOf("AAAAB", 2000), scores(5, 5), 93},
		{"share above 0.8 is penalised", responsesOf("AAAAAB", 2000), scores(5, 5), 88},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Confidence(tt.responses, tt.scores))
		})
	}
}

func TestConfidence_AlwaysWithinBounds(t *testing.T) {
	answerSets := []string{"A", "AAAAAAAAAA", "ABCDABCDAB", "DDDDDDC", "AB"}
	timeSets := [][]int64{{0}, {1}, {0, 1_000_000}, {3000, 3100, 2900}, {60_000, 10}}
	scoreSets := []TypeScores{nil, scores(0), scores(0, 0), scores(100, 0), scores(3, 2, 1), scores(1e9, 1)}

	for _, answers := range answerSets {
		for _, times := range timeSets {
			for _, ts := range scoreSets {
				got := Confidence(responsesOf(answers, times...), ts)
				assert.GreaterOrEqual(t, got, 75)
				assert.LessOrEqual(t, got, 98)
			}
		}
	}
}
