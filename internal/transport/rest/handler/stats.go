package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"coachdiag/internal/logger"
	"coachdiag/internal/service"
)

// StatsHandler serves coach-only views across sessions
type StatsHandler struct {
	svc *service.DiagnosisService
	log logger.ILogger
}

func NewStatsHandler(svc *service.DiagnosisService, log logger.ILogger) *StatsHandler {
	return &StatsHandler{svc: svc, log: log}
}

// UserResults handles GET /v1/diagnosis/users/{userId}/results
func (h *StatsHandler) UserResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.History(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

// TypeDistribution handles GET /v1/diagnosis/stats/types
func (h *StatsHandler) TypeDistribution(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.TypeDistribution(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"types": counts})
}
