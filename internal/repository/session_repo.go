package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"coachdiag/internal/logger"
	"coachdiag/internal/model"
)

// ErrNotFound is returned by Update when the session does not exist
var ErrNotFound = errors.New("session not found")

// SessionRepo persists diagnosis sessions. GetByID returns nil, nil when the
// session does not exist.
type SessionRepo interface {
	Create(ctx context.Context, session *model.DiagnosisSession) (string, error)
	GetByID(ctx context.Context, id string) (*model.DiagnosisSession, error)
	Update(ctx context.Context, session *model.DiagnosisSession) error
	ListCompletedByUser(ctx context.Context, userID string, limit int) ([]*model.DiagnosisSession, error)
}

type sessionRepo struct {
	collection *mongo.Collection
	log        logger.ILogger
}

// NewSessionRepo creates the Mongo-backed repository and ensures its indexes
func NewSessionRepo(db *mongo.Database, log logger.ILogger) SessionRepo {
	repo := &sessionRepo{
		collection: db.Collection("diagnosis_sessions"),
		log:        log,
	}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *sessionRepo) ensureIndexes(ctx context.Context) {
	keys := bson.D{
		{Key: "userId", Value: 1},
		{Key: "status", Value: 1},
		{Key: "completedAt", Value: -1},
	}
	if _, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys}); err != nil {
		r.log.Warn("repository", "failed to create index", map[string]interface{}{
			"collection": r.collection.Name(),
			"error":      err.Error(),
		})
	}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.DiagnosisSession) (string, error) {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, session); err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}
	return session.ID, nil
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.DiagnosisSession, error) {
	var session model.DiagnosisSession
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &session, nil
}

func (r *sessionRepo) Update(ctx context.Context, session *model.DiagnosisSession) error {
	session.UpdatedAt = time.Now().UTC()
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": session.ID}, session)
	if err != nil {
		return fmt.Errorf("replace session: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sessionRepo) ListCompletedByUser(ctx context.Context, userID string, limit int) ([]*model.DiagnosisSession, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completedAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{
		"userId": userID,
		"status": model.SessionCompleted,
	}, opts)
	if err != nil {
		return nil, fmt.Errorf("find completed sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []*model.DiagnosisSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
