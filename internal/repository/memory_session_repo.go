package repository

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"coachdiag/internal/model"
)

type memorySessionRepo struct {
	store *cache.Cache
	ttl   time.Duration
}

// NewMemorySessionRepo keeps sessions in process for ttl after their last
// write. Values are cloned in and out so callers never share state with the
// store.
func NewMemorySessionRepo(ttl time.Duration) SessionRepo {
	return &memorySessionRepo{
		store: cache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

func (r *memorySessionRepo) Create(_ context.Context, session *model.DiagnosisSession) (string, error) {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	r.store.Set(session.ID, session.Clone(), r.ttl)
	return session.ID, nil
}

func (r *memorySessionRepo) GetByID(_ context.Context, id string) (*model.DiagnosisSession, error) {
	v, ok := r.store.Get(id)
	if !ok {
		return nil, nil
	}
	return v.(*model.DiagnosisSession).Clone(), nil
}

func (r *memorySessionRepo) Update(_ context.Context, session *model.DiagnosisSession) error {
	if _, ok := r.store.Get(session.ID); !ok {
		return ErrNotFound
	}
	session.UpdatedAt = time.Now().UTC()
	r.store.Set(session.ID, session.Clone(), r.ttl)
	return nil
}

func (r *memorySessionRepo) ListCompletedByUser(_ context.Context, userID string, limit int) ([]*model.DiagnosisSession, error) {
	var out []*model.DiagnosisSession
	for _, item := range r.store.Items() {
		s := item.Object.(*model.DiagnosisSession)
		if s.UserID == userID && s.IsCompleted() {
			out = append(out, s.Clone())
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return completedAt(out[i]).After(completedAt(out[j]))
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func completedAt(s *model.DiagnosisSession) time.Time {
	if s.CompletedAt != nil {
		return *s.CompletedAt
	}
	return s.UpdatedAt
}
