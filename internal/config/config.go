package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Identity IdentityConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	AuditTopic         string
}

type DatabaseConfig struct {
	Connection string
}

type SessionConfig struct {
	Secret     string
	TTLMinutes int
	Store      string // "memory" or "redis"
}

type IdentityConfig struct {
	Provider  string // "local" or "gotrue"
	GotrueURL string
	GotrueKey string
}

type AIConfig struct {
	GeminiAPIKey string
	GeminiModel  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			AuditTopic:         getEnv("AUDIT_TOPIC_NAME", "AUDIT_EVENTS"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", "dev_session_secret"),
			TTLMinutes: getEnvAsInt("SESSION_TTL_MINUTES", 1440),
			Store:      getEnv("SESSION_STORE", "memory"),
		},
		Identity: IdentityConfig{
			Provider:  getEnv("IDENTITY_PROVIDER", "local"),
			GotrueURL: getEnv("GOTRUE_URL", ""),
			GotrueKey: getEnv("GOTRUE_API_KEY", ""),
		},
		Ai: AIConfig{
			GeminiAPIKey: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
