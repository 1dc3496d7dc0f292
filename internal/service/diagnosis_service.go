package service

import (
	"context"
	"fmt"
	"time"

	"coachdiag/internal/cache"
	"coachdiag/internal/diagnosis"
	"coachdiag/internal/events"
	"coachdiag/internal/logger"
	"coachdiag/internal/model"
	"coachdiag/internal/repository"
)

// HistoryLimit caps how many completed results a user history returns
const HistoryLimit = 10

// EventPublisher is satisfied by *events.Publisher
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// DiagnosisService runs the session state machine: active sessions take
// answers until the branching engine has nothing left to ask, then complete
// exactly once.
type DiagnosisService struct {
	catalog *diagnosis.Catalog
	repo    repository.SessionRepo
	authSvc *AuthService
	log     logger.ILogger

	results     cache.ResultCache
	typeStats   cache.TypeStatsCache
	publisher   EventPublisher
	broadcaster Broadcaster

	locks *sessionLocks
	now   func() time.Time
}

func NewDiagnosisService(
	catalog *diagnosis.Catalog,
	repo repository.SessionRepo,
	authSvc *AuthService,
	log logger.ILogger,
) *DiagnosisService {
	return &DiagnosisService{
		catalog: catalog,
		repo:    repo,
		authSvc: authSvc,
		log:     log,
		locks:   newSessionLocks(),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// SetResultCache enables Redis caching of composed results
func (s *DiagnosisService) SetResultCache(c cache.ResultCache) {
	s.results = c
}

// SetTypeStats enables counting of primary types
func (s *DiagnosisService) SetTypeStats(c cache.TypeStatsCache) {
	s.typeStats = c
}

// SetPublisher enables completion events
func (s *DiagnosisService) SetPublisher(p EventPublisher) {
	s.publisher = p
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *DiagnosisService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Catalog exposes the question and type catalog the service scores against
func (s *DiagnosisService) Catalog() *diagnosis.Catalog {
	return s.catalog
}

// Start creates a fresh active session and returns its first question
func (s *DiagnosisService) Start(ctx context.Context, userID string) (*model.StartSessionResponse, error) {
	now := s.now()
	session := &model.DiagnosisSession{
		UserID:         userID,
		Status:         model.SessionActive,
		Responses:      []model.Response{},
		RawScores:      map[string]float64{},
		TotalQuestions: s.catalog.ProjectedTotal(nil),
		StartedAt:      now,
		LastActiveAt:   now,
	}

	id, err := s.repo.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	token, err := s.authSvc.GenerateSessionToken(id, userID)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	s.log.Info("diagnosis", "session started", map[string]interface{}{
		"sessionId": id,
		"userId":    userID,
	})

	return &model.StartSessionResponse{
		SessionID:     id,
		Token:         token,
		FirstQuestion: s.catalog.NextQuestion(nil, 0),
		Progress:      model.NewProgress(0, session.TotalQuestions),
	}, nil
}

// SubmitAnswer records one answer and reports what to ask next. Only the
// question currently on offer is accepted. A question that was already
// answered is not appended again; the call replays the decision for the
// current state instead, so retries are safe.
func (s *DiagnosisService) SubmitAnswer(ctx context.Context, sessionID string, req model.SubmitAnswerRequest) (*model.SubmitAnswerResponse, error) {
	if !req.Answer.IsValid() || req.ResponseTime < 0 {
		return nil, ErrInvalidAnswer
	}

	unlock := s.locks.lock(sessionID)
	defer unlock()

	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsCompleted() {
		return nil, ErrSessionAlreadyCompleted
	}
	if _, ok := s.catalog.Question(req.QuestionID); !ok {
		return nil, ErrUnknownQuestion
	}

	if prev, dup := session.HasResponse(req.QuestionID); dup {
		return s.replay(ctx, session, prev, req)
	}

	expected := s.catalog.NextQuestion(session.Responses, session.CurrentQuestionIndex)
	if expected == nil {
		return s.finishStalled(ctx, session)
	}
	if expected.ID != req.QuestionID {
		s.log.Debug("diagnosis", "answer for a question not on offer", map[string]interface{}{
			"sessionId":  session.ID,
			"questionId": req.QuestionID,
			"expected":   expected.ID,
		})
		return nil, ErrUnexpectedQuestion
	}

	now := s.now()
	session.Responses = append(session.Responses, model.Response{
		QuestionID:   req.QuestionID,
		Answer:       req.Answer,
		ResponseTime: req.ResponseTime,
		AnsweredAt:   now,
	})
	session.CurrentQuestionIndex++
	session.RawScores = s.catalog.RawScores(session.Responses)
	session.TotalQuestions = s.catalog.ProjectedTotal(session.Responses)
	session.LastActiveAt = now

	next := s.catalog.NextQuestion(session.Responses, session.CurrentQuestionIndex)
	if next == nil {
		s.complete(session, now)
	}

	if err := s.repo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	resp := &model.SubmitAnswerResponse{
		NextQuestion: next,
		IsCompleted:  session.IsCompleted(),
		Progress:     progressOf(session),
	}

	s.broadcast(session.ID, MsgAnswerAccepted, map[string]interface{}{
		"questionId": req.QuestionID,
		"progress":   resp.Progress,
	})
	if session.IsCompleted() {
		s.afterCompletion(ctx, session)
	}
	return resp, nil
}

// replay answers a duplicate submission from the session as stored
func (s *DiagnosisService) replay(ctx context.Context, session *model.DiagnosisSession, prev model.Response, req model.SubmitAnswerRequest) (*model.SubmitAnswerResponse, error) {
	if prev.Answer != req.Answer {
		s.log.Warn("diagnosis", "duplicate answer differs from the recorded one, keeping the first", map[string]interface{}{
			"sessionId":  session.ID,
			"questionId": req.QuestionID,
			"recorded":   prev.Answer,
			"submitted":  req.Answer,
		})
	} else {
		s.log.Debug("diagnosis", "duplicate answer ignored", map[string]interface{}{
			"sessionId":  session.ID,
			"questionId": req.QuestionID,
		})
	}

	next := s.catalog.NextQuestion(session.Responses, session.CurrentQuestionIndex)
	if next == nil {
		return s.finishStalled(ctx, session)
	}

	return &model.SubmitAnswerResponse{
		NextQuestion: next,
		IsCompleted:  session.IsCompleted(),
		Progress:     progressOf(session),
	}, nil
}

// finishStalled completes an active session with nothing left to ask, left
// behind when a previous write stored the last answer but never completed
func (s *DiagnosisService) finishStalled(ctx context.Context, session *model.DiagnosisSession) (*model.SubmitAnswerResponse, error) {
	s.complete(session, s.now())
	if err := s.repo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	s.afterCompletion(ctx, session)

	return &model.SubmitAnswerResponse{
		IsCompleted: true,
		Progress:    progressOf(session),
	}, nil
}

// complete moves the session into its terminal state in memory
func (s *DiagnosisService) complete(session *model.DiagnosisSession, at time.Time) {
	out := s.catalog.Finalize(session.Responses)
	confidence := out.Confidence

	session.Status = model.SessionCompleted
	session.RawScores = out.RawScores
	session.ResultType = out.PrimaryID
	session.ConfidenceScore = &confidence
	session.TotalQuestions = len(session.Responses)
	session.CompletedAt = &at
}

// afterCompletion fans the finished result out. Every step is best effort.
func (s *DiagnosisService) afterCompletion(ctx context.Context, session *model.DiagnosisSession) {
	details := map[string]interface{}{
		"sessionId":  session.ID,
		"resultType": session.ResultType,
		"confidence": *session.ConfidenceScore,
		"answers":    len(session.Responses),
	}
	s.log.Info("diagnosis", "session completed", details)

	if s.results != nil {
		if result, ok := s.catalog.Compose(session); ok {
			if err := s.results.Set(ctx, result); err != nil {
				s.log.Warn("diagnosis", "failed to cache result", map[string]interface{}{"sessionId": session.ID, "error": err.Error()})
			}
		}
	}

	if s.typeStats != nil {
		if err := s.typeStats.Increment(ctx, session.ResultType); err != nil {
			s.log.Warn("diagnosis", "failed to count result type", map[string]interface{}{"sessionId": session.ID, "error": err.Error()})
		}
	}

	if s.publisher != nil {
		ev := events.DiagnosisCompleted{Data: events.DiagnosisCompletedPayload{
			SessionID:   session.ID,
			UserID:      session.UserID,
			ResultType:  session.ResultType,
			Confidence:  *session.ConfidenceScore,
			CompletedAt: *session.CompletedAt,
		}}
		if err := s.publisher.Publish(ctx, ev); err != nil {
			s.log.Error("events", "failed to publish completion", map[string]interface{}{"sessionId": session.ID, "error": err})
		}
	}

	s.broadcast(session.ID, MsgDiagnosisCompleted, map[string]interface{}{
		"resultType": session.ResultType,
		"confidence": *session.ConfidenceScore,
	})
}

// GetSession returns progress and the question the respondent should see now
func (s *DiagnosisService) GetSession(ctx context.Context, sessionID string) (*model.SessionView, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	view := &model.SessionView{
		SessionID: session.ID,
		Status:    session.Status,
		Progress:  progressOf(session),
	}
	if !session.IsCompleted() {
		view.CurrentQuestion = s.catalog.NextQuestion(session.Responses, session.CurrentQuestionIndex)
	}
	return view, nil
}

// GetResult composes the result of a completed session, served from cache
// when possible
func (s *DiagnosisService) GetResult(ctx context.Context, sessionID string) (*model.DiagnosisResult, error) {
	if s.results != nil {
		cached, err := s.results.Get(ctx, sessionID)
		if err != nil {
			s.log.Warn("diagnosis", "result cache read failed", map[string]interface{}{"sessionId": sessionID, "error": err.Error()})
		} else if cached != nil {
			return cached, nil
		}
	}

	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsCompleted() {
		return nil, ErrResultNotReady
	}

	result, ok := s.catalog.Compose(session)
	if !ok {
		return nil, fmt.Errorf("session %s has result type %q that is not in the catalog", session.ID, session.ResultType)
	}

	if s.results != nil {
		if err := s.results.Set(ctx, result); err != nil {
			s.log.Warn("diagnosis", "failed to cache result", map[string]interface{}{"sessionId": sessionID, "error": err.Error()})
		}
	}
	return result, nil
}

// History returns a user's most recent completed results, newest first
func (s *DiagnosisService) History(ctx context.Context, userID string) ([]*model.DiagnosisResult, error) {
	sessions, err := s.repo.ListCompletedByUser(ctx, userID, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("list completed sessions: %w", err)
	}

	results := make([]*model.DiagnosisResult, 0, len(sessions))
	for _, session := range sessions {
		result, ok := s.catalog.Compose(session)
		if !ok {
			s.log.Warn("diagnosis", "skipping session with unknown result type", map[string]interface{}{
				"sessionId":  session.ID,
				"resultType": session.ResultType,
			})
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

// TypeDistribution reports how often each type was the primary result. It is
// empty when stats are not enabled.
func (s *DiagnosisService) TypeDistribution(ctx context.Context) ([]model.TypeCount, error) {
	if s.typeStats == nil {
		return []model.TypeCount{}, nil
	}
	return s.typeStats.Distribution(ctx)
}

// Types lists the archetypes respondents can be classified into
func (s *DiagnosisService) Types() []model.DiagnosisType {
	return s.catalog.Types()
}

func (s *DiagnosisService) load(ctx context.Context, sessionID string) (*model.DiagnosisSession, error) {
	session, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *DiagnosisService) broadcast(sessionID, msgType string, payload interface{}) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(sessionID, msgType, payload)
	}
}

func progressOf(session *model.DiagnosisSession) model.Progress {
	return model.NewProgress(len(session.Responses), session.TotalQuestions)
}
