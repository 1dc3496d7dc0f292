package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachdiag/internal/config"
	"coachdiag/internal/diagnosis"
	"coachdiag/internal/logger"
	"coachdiag/internal/model"
	"coachdiag/internal/repository"
	"coachdiag/internal/service"
	"coachdiag/internal/transport/ws"
)

type testAPI struct {
	handler http.Handler
	auth    *service.AuthService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	log := logger.NewNop()
	auth := service.NewAuthService(config.AuthConfig{
		JWTSecret:       "test-secret",
		CoachUsername:   "coach",
		CoachPassword:   "pw",
		SessionTokenTTL: time.Hour,
	})
	svc := service.NewDiagnosisService(diagnosis.DefaultCatalog(), repository.NewMemorySessionRepo(time.Hour), auth, log)
	hub := ws.NewHub(log)
	svc.SetBroadcaster(hub)

	return &testAPI{
		handler: NewRouter(&Container{
			AuthService:      auth,
			DiagnosisService: svc,
			WSHub:            hub,
			CORS: config.CORSConfig{
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders: []string{"Content-Type", "Authorization"},
			},
			Logger: log,
		}),
		auth: auth,
	}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func (a *testAPI) start(t *testing.T, userID string) model.StartSessionResponse {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/v1/diagnosis/sessions", "", model.StartSessionRequest{UserID: userID})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp model.StartSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealthAndSwagger(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = api.do(t, http.MethodGet, "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "/v1", doc["basePath"])
}

func TestCORSPreflight(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodOptions, "/v1/diagnosis/sessions/abc/answers", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestStartSession_EmptyBody(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/v1/diagnosis/sessions", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp model.StartSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.FirstQuestion)
	assert.Equal(t, "motivation_source", resp.FirstQuestion.ID)
	assert.Len(t, resp.FirstQuestion.Options, 4)
	assert.NotContains(t, rec.Body.String(), "intrinsic_motivation", "weights must stay server-side")
}

func TestSessionRoutes_RequireMatchingToken(t *testing.T) {
	api := newTestAPI(t)
	s1 := api.start(t, "")
	s2 := api.start(t, "")
	path := "/v1/diagnosis/sessions/" + s1.SessionID

	assert.Equal(t, http.StatusUnauthorized, api.do(t, http.MethodGet, path, "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(t, http.MethodGet, path, "garbage", nil).Code)
	assert.Equal(t, http.StatusForbidden, api.do(t, http.MethodGet, path, s2.Token, nil).Code)

	rec := api.do(t, http.MethodGet, path, s1.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var view model.SessionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, model.SessionActive, view.Status)

	// query-string tokens work too
	rec = api.do(t, http.MethodGet, path+"?token="+s1.Token, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmitAnswer_Validation(t *testing.T) {
	api := newTestAPI(t)
	s := api.start(t, "")
	path := "/v1/diagnosis/sessions/" + s.SessionID + "/answers"

	tests := []struct {
		name string
		body interface{}
		want int
	}{
		{"malformed json", `{"questionId":`, http.StatusBadRequest},
		{"missing question", map[string]interface{}{"answer": "A"}, http.StatusBadRequest},
		{"answer outside A-D", map[string]interface{}{"questionId": "motivation_source", "answer": "E"}, http.StatusBadRequest},
		{"negative time", map[string]interface{}{"questionId": "motivation_source", "answer": "A", "responseTime": -5}, http.StatusBadRequest},
		{"unknown question", map[string]interface{}{"questionId": "nope", "answer": "A"}, http.StatusBadRequest},
		{"question not on offer", map[string]interface{}{"questionId": "achievement_source", "answer": "A"}, http.StatusConflict},
		{"follow-up during core", map[string]interface{}{"questionId": "learning_pace", "answer": "A"}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(t, http.MethodPost, path, s.Token, tt.body)
			assert.Equal(t, tt.want, rec.Code)
			assert.NotEmpty(t, errorOf(t, rec))
		})
	}
}

func TestFullFlow(t *testing.T) {
	api := newTestAPI(t)
	s := api.start(t, "student-42")
	base := "/v1/diagnosis/sessions/" + s.SessionID

	rec := api.do(t, http.MethodGet, base+"/result", s.Token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	next := s.FirstQuestion
	var last model.SubmitAnswerResponse
	for next != nil {
		rec := api.do(t, http.MethodPost, base+"/answers", s.Token, model.SubmitAnswerRequest{
			QuestionID: next.ID, Answer: model.AnswerA, ResponseTime: 3000,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		last = model.SubmitAnswerResponse{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &last))
		next = last.NextQuestion
	}
	assert.True(t, last.IsCompleted)
	assert.Equal(t, 100, last.Progress.Percentage)

	rec = api.do(t, http.MethodGet, base+"/result", s.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var result model.DiagnosisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, diagnosis.TypeExplorer, result.PrimaryType.ID)
	assert.Equal(t, 93, result.Confidence)
	assert.Nil(t, result.SecondaryType)

	rec = api.do(t, http.MethodPost, base+"/answers", s.Token, model.SubmitAnswerRequest{
		QuestionID: "motivation_source", Answer: model.AnswerB,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "this diagnosis session is invalid or finished", errorOf(t, rec))

	// coach views
	login := api.do(t, http.MethodPost, "/v1/auth/login", "", model.LoginRequest{Username: "coach", Password: "pw"})
	require.Equal(t, http.StatusOK, login.Code)
	var lr model.LoginResponse
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &lr))

	rec = api.do(t, http.MethodGet, "/v1/diagnosis/users/student-42/results", lr.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history struct {
		Results []model.DiagnosisResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history.Results, 1)
	assert.Equal(t, s.SessionID, history.Results[0].SessionID)

	rec = api.do(t, http.MethodGet, "/v1/diagnosis/stats/types", lr.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"types":[]}`, rec.Body.String())
}

func TestUnknownSession(t *testing.T) {
	api := newTestAPI(t)
	token, err := api.auth.GenerateSessionToken("ghost", "")
	require.NoError(t, err)

	rec := api.do(t, http.MethodGet, "/v1/diagnosis/sessions/ghost", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "this diagnosis session is invalid or finished", errorOf(t, rec))
}

func TestCoachRoutes(t *testing.T) {
	api := newTestAPI(t)
	s := api.start(t, "")

	assert.Equal(t, http.StatusUnauthorized, api.do(t, http.MethodGet, "/v1/diagnosis/stats/types", "", nil).Code)
	// a respondent token is not a coach token
	assert.Equal(t, http.StatusUnauthorized, api.do(t, http.MethodGet, "/v1/diagnosis/stats/types", s.Token, nil).Code)

	rec := api.do(t, http.MethodPost, "/v1/auth/login", "", model.LoginRequest{Username: "coach", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{"username": "coach"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTypes(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/v1/diagnosis/types", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Types []map[string]interface{} `json:"types"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Types, 6)
	assert.Equal(t, "explorer", body.Types[0]["id"])
	assert.NotContains(t, body.Types[0], "formula")
}
