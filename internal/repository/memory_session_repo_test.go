package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachdiag/internal/model"
)

func TestMemorySessionRepo_CreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepo(time.Hour)

	s := &model.DiagnosisSession{UserID: "u-1", Status: model.SessionActive}
	id, err := repo.Create(ctx, s)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, id, s.ID)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u-1", got.UserID)

	// mutations on a returned copy do not leak into the store
	got.Responses = append(got.Responses, model.Response{QuestionID: "q1", Answer: model.AnswerA})
	again, _ := repo.GetByID(ctx, id)
	assert.Empty(t, again.Responses)

	require.NoError(t, repo.Update(ctx, got))
	again, _ = repo.GetByID(ctx, id)
	assert.Len(t, again.Responses, 1)
}

func TestMemorySessionRepo_Missing(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepo(time.Hour)

	got, err := repo.GetByID(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, got)

	err = repo.Update(ctx, &model.DiagnosisSession{ID: "nope"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySessionRepo_ListCompletedByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepo(time.Hour)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 12; i++ {
		done := base.Add(time.Duration(i) * time.Hour)
		_, err := repo.Create(ctx, &model.DiagnosisSession{
			UserID:      "u-1",
			Status:      model.SessionCompleted,
			ResultType:  "explorer",
			CompletedAt: &done,
		})
		require.NoError(t, err)
	}
	_, _ = repo.Create(ctx, &model.DiagnosisSession{UserID: "u-1", Status: model.SessionActive})
	_, _ = repo.Create(ctx, &model.DiagnosisSession{UserID: "u-2", Status: model.SessionCompleted, CompletedAt: &base})

	list, err := repo.ListCompletedByUser(ctx, "u-1", 10)
	require.NoError(t, err)
	require.Len(t, list, 10)
	assert.Equal(t, base.Add(11*time.Hour), *list[0].CompletedAt)
	assert.Equal(t, base.Add(2*time.Hour), *list[9].CompletedAt)
	for _, s := range list {
		assert.Equal(t, "u-1", s.UserID)
		assert.True(t, s.IsCompleted())
	}
}
