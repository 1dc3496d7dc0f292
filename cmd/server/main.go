package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"coachdiag/internal/cache"
	"coachdiag/internal/config"
	"coachdiag/internal/diagnosis"
	"coachdiag/internal/events"
	"coachdiag/internal/logger"
	"coachdiag/internal/repository"
	"coachdiag/internal/service"
	"coachdiag/internal/transport/rest"
	"coachdiag/internal/transport/ws"
)

// @title Coaching Diagnosis API
// @version 1.0
// @description Adaptive learning-style diagnosis: sessions, answers and results
// @host localhost:8080
// @BasePath /v1
func main() {
	cfg := config.Load()
	log := logger.NewZapLogger(cfg.Log.FilePath, cfg.IsProduction())
	defer log.Sync()

	ctx := context.Background()

	catalog := diagnosis.DefaultCatalog()
	if issues := catalog.Validate(); len(issues) > 0 {
		for _, issue := range issues {
			log.Error("bootstrap", "catalog issue", map[string]interface{}{"issue": issue.String()})
		}
		os.Exit(1)
	}

	// Session store
	var sessionRepo repository.SessionRepo
	switch cfg.Sessions.Store {
	case "memory":
		sessionRepo = repository.NewMemorySessionRepo(cfg.Sessions.TTL)
		log.Warn("bootstrap", "using in-memory session store, sessions are lost on restart", nil)
	default:
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			fatal(log, "failed to connect to MongoDB", err)
		}
		defer mongoClient.Disconnect(ctx)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := mongoClient.Ping(pingCtx, nil); err != nil {
			fatal(log, "failed to ping MongoDB", err)
		}
		log.Info("bootstrap", "connected to MongoDB", map[string]interface{}{"database": cfg.Mongo.Database})

		sessionRepo = repository.NewSessionRepo(mongoClient.Database(cfg.Mongo.Database), log)
	}

	authSvc := service.NewAuthService(cfg.Auth)
	diagSvc := service.NewDiagnosisService(catalog, sessionRepo, authSvc, log)

	// Redis result cache and type stats
	if cfg.Redis.URI != "" {
		redisOpts, err := cfg.RedisOptions()
		if err != nil {
			fatal(log, "invalid REDIS_URI", err)
		}
		rdb := redis.NewClient(redisOpts)
		defer rdb.Close()

		if _, err := rdb.Ping(ctx).Result(); err != nil {
			fatal(log, "failed to ping Redis", err)
		}
		log.Info("bootstrap", "connected to Redis", nil)

		diagSvc.SetResultCache(cache.NewResultCache(rdb, cfg.Redis.ResultCacheTTL))
		diagSvc.SetTypeStats(cache.NewTypeStatsCache(rdb))
	}

	// Completion events
	if cfg.NATS.URL != "" {
		publisher, err := events.NewPublisher(cfg.NATS.URL, log)
		if err != nil {
			fatal(log, "failed to start NATS publisher", err)
		}
		defer publisher.Close()
		diagSvc.SetPublisher(publisher)
		log.Info("bootstrap", "publishing completion events", map[string]interface{}{"subject": events.SubjectDiagnosisCompleted})
	}

	wsHub := ws.NewHub(log)
	diagSvc.SetBroadcaster(wsHub)

	router := rest.NewRouter(&rest.Container{
		AuthService:      authSvc,
		DiagnosisService: diagSvc,
		WSHub:            wsHub,
		CORS:             cfg.CORS,
		Logger:           log,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info("bootstrap", "server starting", map[string]interface{}{
			"port":         cfg.Server.Port,
			"sessionStore": cfg.Sessions.Store,
			"env":          cfg.Server.Env,
		})

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fatal(log, "listen failed", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("bootstrap", "shutting down server", nil)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("bootstrap", "server forced to shutdown", map[string]interface{}{"error": err})
	}

	log.Info("bootstrap", "server exited", nil)
}

func fatal(log logger.ILogger, msg string, err error) {
	log.Error("bootstrap", msg, map[string]interface{}{"error": err})
	log.Sync()
	os.Exit(1)
}
