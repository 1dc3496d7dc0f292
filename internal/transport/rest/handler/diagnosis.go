package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"coachdiag/internal/logger"
	"coachdiag/internal/model"
	"coachdiag/internal/service"
)

// DiagnosisHandler serves the respondent-facing questionnaire
type DiagnosisHandler struct {
	svc *service.DiagnosisService
	log logger.ILogger
}

func NewDiagnosisHandler(svc *service.DiagnosisService, log logger.ILogger) *DiagnosisHandler {
	return &DiagnosisHandler{svc: svc, log: log}
}

// Start handles POST /v1/diagnosis/sessions
func (h *DiagnosisHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req model.StartSessionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.svc.Start(r.Context(), req.UserID)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Get handles GET /v1/diagnosis/sessions/{id}
func (h *DiagnosisHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetSession(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// SubmitAnswer handles POST /v1/diagnosis/sessions/{id}/answers
func (h *DiagnosisHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitAnswerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.svc.SubmitAnswer(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Result handles GET /v1/diagnosis/sessions/{id}/result
func (h *DiagnosisHandler) Result(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetResult(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Types handles GET /v1/diagnosis/types
func (h *DiagnosisHandler) Types(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"types": h.svc.Types()})
}
