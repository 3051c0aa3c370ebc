// Package config loads application configuration from environment variables.
package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the full application configuration.
// Loaded once at startup and treated as immutable afterwards; the signing
// secret and encryption key are constant for the process lifetime.
type Config struct {
	// Server
	ServerPort        string
	CORSAllowedOrigin string

	// Storage
	DatabasePath  string // SQLite file for users and mood entries
	SessionDBPath string // bbolt file for session windows

	// Auth
	JWTSecret  []byte
	TokenTTL   time.Duration // access token lifetime
	SessionCap time.Duration // absolute session-duration cap

	// Encryption (mood notes)
	EncryptionKey []byte // 32 bytes, AES-256

	// LLM
	GeminiAPIKey string
	GeminiModel  string
	LLMTimeout   time.Duration

	// Rate limiting
	RateLimitRequests int           // requests per window per client IP
	RateLimitWindow   time.Duration // rate-limit window
}

// Load reads Config from environment variables.
// Missing required variables are reported together in a single error.
func Load() (*Config, error) {
	cfg := &Config{}

	var missing []string

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	cfg.JWTSecret = []byte(jwtSecret)

	encryptionKey := os.Getenv("ENCRYPTION_KEY")
	if encryptionKey == "" {
		missing = append(missing, "ENCRYPTION_KEY")
	}

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	if cfg.GeminiAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	key, err := base64.StdEncoding.DecodeString(encryptionKey)
	if err != nil {
		return nil, fmt.Errorf("ENCRYPTION_KEY must be base64 encoded: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("ENCRYPTION_KEY must decode to 32 bytes, got %d", len(key))
	}
	cfg.EncryptionKey = key

	cfg.ServerPort = getEnvString("SERVER_PORT", "8080")
	cfg.CORSAllowedOrigin = getEnvString("CORS_ALLOWED_ORIGIN", "*")
	cfg.DatabasePath = getEnvString("DATABASE_PATH", "solace.db")
	cfg.SessionDBPath = getEnvString("SESSION_DB_PATH", "sessions.db")
	cfg.TokenTTL = getEnvDuration("TOKEN_TTL", 2*time.Hour)
	cfg.SessionCap = getEnvDuration("SESSION_CAP", 60*time.Minute)
	cfg.GeminiModel = getEnvString("GEMINI_MODEL", "gemini-2.5-flash")
	cfg.LLMTimeout = getEnvDuration("LLM_TIMEOUT", 30*time.Second)
	cfg.RateLimitRequests = getEnvInt("RATE_LIMIT_REQUESTS", 120)
	cfg.RateLimitWindow = getEnvDuration("RATE_LIMIT_WINDOW", time.Minute)

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
