package rest

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"coachdiag/internal/config"
	"coachdiag/internal/logger"
	"coachdiag/internal/service"
	"coachdiag/internal/transport/rest/handler"
	"coachdiag/internal/transport/rest/middleware"
	"coachdiag/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	DiagnosisService *service.DiagnosisService
	WSHub            *ws.Hub
	CORS             config.CORSConfig
	Logger           logger.ILogger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(c.AuthService)
	diagHandler := handler.NewDiagnosisHandler(c.DiagnosisService, c.Logger)
	statsHandler := handler.NewStatsHandler(c.DiagnosisService, c.Logger)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.DiagnosisService, c.Logger)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.CORS))

	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/diagnosis/sessions", diagHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/diagnosis/types", diagHandler.Types).Methods("GET", "OPTIONS")

	// WebSocket routes (token in query param)
	v1.HandleFunc("/ws/diagnosis/sessions/{id}", wsHandler.SessionWS).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
	r.HandleFunc("/swagger/doc.json", handler.SwaggerDoc).Methods("GET")

	// Respondent routes (session token scoped to {id})
	sessionRoutes := v1.PathPrefix("/diagnosis/sessions/{id}").Subrouter()
	sessionRoutes.Use(authMW.RequireSession)

	sessionRoutes.HandleFunc("", diagHandler.Get).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/answers", diagHandler.SubmitAnswer).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/result", diagHandler.Result).Methods("GET", "OPTIONS")

	// Coach routes
	coachRoutes := v1.NewRoute().Subrouter()
	coachRoutes.Use(authMW.RequireCoach)

	coachRoutes.HandleFunc("/diagnosis/users/{userId}/results", statsHandler.UserResults).Methods("GET", "OPTIONS")
	coachRoutes.HandleFunc("/diagnosis/stats/types", statsHandler.TypeDistribution).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(cfg config.CORSConfig) mux.MiddlewareFunc {
	origins := strings.Join(cfg.AllowedOrigins, ", ")
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origins)
			w.Header().Set("Access-Control-Allow-Methods", methods)
			w.Header().Set("Access-Control-Allow-Headers", headers)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
