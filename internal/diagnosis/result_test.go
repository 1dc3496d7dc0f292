package diagnosis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachdiag/internal/model"
)

func completedSession(c *Catalog, responses []model.Response) *model.DiagnosisSession {
	out := c.Finalize(responses)
	done := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &model.DiagnosisSession{
		ID:              "s-1",
		UserID:          "u-1",
		Status:          model.SessionCompleted,
		Responses:       responses,
		RawScores:       out.RawScores,
		ResultType:      out.PrimaryID,
		ConfidenceScore: &out.Confidence,
		CompletedAt:     &done,
	}
}

func TestFinalize_DecisiveExplorer(t *testing.T) {
	c := decisiveCatalog()
	out := c.Finalize(answerAll(c.Core(), "AAAAAA", 3000))

	assert.Equal(t, "explorer", out.PrimaryID)
	assert.Equal(t, map[string]float64{"intrinsic": 8, "openness": 6, "autonomy": 5}, out.RawScores)
	// steady times (+8), gap capped (+5), straight-lined (-5)
	assert.Equal(t, 93, out.Confidence)
}

func TestFinalize_TiesResolveByCatalogOrder(t *testing.T) {
	c := tieCatalog()
	out := c.Finalize(nil)
	assert.Equal(t, "alpha", out.PrimaryID)
}

func TestCompose_SuppressesDistantSecondary(t *testing.T) {
	c := decisiveCatalog()
	responses := answerAll(c.Core(), "AAAAAA", 3000)
	res, ok := c.Compose(completedSession(c, responses))
	require.True(t, ok)

	assert.Equal(t, "explorer", res.PrimaryType.ID)
	assert.Nil(t, res.SecondaryType)
	assert.Equal(t, 93, res.Confidence)
	assert.Equal(t, 6, res.TotalQuestions)
	assert.Equal(t, int64(18000), res.ResponseTime)
	assert.Equal(t, "u-1", res.UserID)
	assert.InDelta(t, 25.8, res.Scores["explorer"], 1e-9)
	assert.InDelta(t, 14.0, res.Scores["strategist"], 1e-9)
}

func TestCompose_SurfacesCloseSecondary(t *testing.T) {
	c := tieCatalog()
	responses := answerAll(c.Core(), "AAAAAA", 3000)
	res, ok := c.Compose(completedSession(c, responses))
	require.True(t, ok)

	assert.Equal(t, "alpha", res.PrimaryType.ID)
	require.NotNil(t, res.SecondaryType)
	assert.Equal(t, "beta", res.SecondaryType.ID)
}

func TestCompose_SecondaryThresholdIsExclusive(t *testing.T) {
	c := tieCatalog()
	s := completedSession(c, nil)
	s.ResultType = "alpha"
	s.RawScores = map[string]float64{"x": 20, "y": 16} // exactly 80%

	res, ok := c.Compose(s)
	require.True(t, ok)
	assert.Nil(t, res.SecondaryType)
}

func TestCompose_NotReady(t *testing.T) {
	c := tieCatalog()

	_, ok := c.Compose(&model.DiagnosisSession{ID: "s", Status: model.SessionActive})
	assert.False(t, ok)

	s := completedSession(c, nil)
	s.ResultType = "retired_type"
	_, ok = c.Compose(s)
	assert.False(t, ok)
}
