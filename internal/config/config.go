package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Auth     AuthConfig
	Sessions SessionConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type LogConfig struct {
	FilePath string
}

type MongoConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	// URI may carry a redis:// scheme; empty disables result caching and stats
	URI            string
	ResultCacheTTL time.Duration
}

type NATSConfig struct {
	// URL empty disables completion events
	URL string
}

type AuthConfig struct {
	JWTSecret       string
	CoachUsername   string
	CoachPassword   string
	SessionTokenTTL time.Duration
}

type SessionConfig struct {
	// Store is "mongo" or "memory"
	Store string
	// TTL only applies to the memory store
	TTL time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// Load reads .env when present and falls back to defaults for anything unset
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("GO_ENV", "development"),
		},
		Log: LogConfig{
			FilePath: getEnv("LOG_FILE_PATH", "logs/coachdiag.log"),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DATABASE", "coachdiag"),
		},
		Redis: RedisConfig{
			URI:            getEnv("REDIS_URI", ""),
			ResultCacheTTL: getEnvAsDuration("RESULT_CACHE_TTL", 24*time.Hour),
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", ""),
		},
		Auth: AuthConfig{
			JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-me"),
			CoachUsername:   getEnv("COACH_USERNAME", "coach"),
			CoachPassword:   getEnv("COACH_PASSWORD", ""),
			SessionTokenTTL: getEnvAsDuration("SESSION_TOKEN_TTL", 24*time.Hour),
		},
		Sessions: SessionConfig{
			Store: getEnv("SESSION_STORE", "mongo"),
			TTL:   getEnvAsDuration("SESSION_TTL", 72*time.Hour),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnvAsList("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS"),
			AllowedHeaders: getEnvAsList("CORS_ALLOWED_HEADERS", "Content-Type,Authorization"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// RedisOptions parses REDIS_URI. A bare host:port is treated as redis://.
func (c *Config) RedisOptions() (*redis.Options, error) {
	uri := c.Redis.URI
	if !strings.Contains(uri, "://") {
		uri = "redis://" + uri
	}
	return redis.ParseURL(uri)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if n, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return n
	}
	return defaultVal
}

// getEnvAsDuration accepts Go durations ("90m") or bare seconds ("3600")
func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultVal
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs := getEnvAsInt(key, -1); secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultVal
}

func getEnvAsList(key, defaultVal string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, defaultVal), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
