package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"coachdiag/internal/logger"
	"coachdiag/internal/service"
)

const msgSessionInvalid = "this diagnosis session is invalid or finished"

var validate = validator.New(validator.WithRequiredStructEnabled())

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// decode reads a JSON body into dst and runs its validate tags
func decode(r *http.Request, dst interface{}) error {
	// an empty body decodes to the zero value and is left to validation
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return errors.New("invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return errors.New("invalid field: " + verrs[0].Field())
		}
		return err
	}
	return nil
}

// writeServiceError maps service errors to status codes. Anything unexpected
// is logged and reported generically so no scoring detail reaches the client.
func writeServiceError(w http.ResponseWriter, log logger.ILogger, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, msgSessionInvalid)
	case errors.Is(err, service.ErrSessionAlreadyCompleted):
		writeError(w, http.StatusConflict, msgSessionInvalid)
	case errors.Is(err, service.ErrResultNotReady):
		writeError(w, http.StatusConflict, "diagnosis is not finished yet")
	case errors.Is(err, service.ErrUnknownQuestion):
		writeError(w, http.StatusBadRequest, "unknown question")
	case errors.Is(err, service.ErrUnexpectedQuestion):
		writeError(w, http.StatusConflict, "question is not the one currently asked, fetch the session to resync")
	case errors.Is(err, service.ErrInvalidAnswer):
		writeError(w, http.StatusBadRequest, "answer must be one of A, B, C, D with a non-negative response time")
	default:
		log.Error("http", "request failed", map[string]interface{}{"error": err})
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
