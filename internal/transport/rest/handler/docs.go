package handler

import (
	"net/http"

	"github.com/swaggo/swag"

	_ "coachdiag/docs"
)

// SwaggerDoc handles GET /swagger/doc.json
func SwaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "swagger document unavailable")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}
