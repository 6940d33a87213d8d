package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the server reads from the environment.
type Config struct {
	Port               string
	GinMode            string
	JWTSecret          string
	SessionExpiry      time.Duration
	MongoURI           string
	MongoDatabase      string
	CORSAllowedOrigins []string
	StaticDir          string

	// Object storage for listing photos (optional; the presign endpoint is
	// disabled when no bucket is configured).
	S3Bucket        string
	S3Region        string
	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicBaseURL string
}

// ErrMissingSecret is returned when JWT_SECRET is not set. The server must
// not start without a signing key.
var ErrMissingSecret = errors.New("config: JWT_SECRET is required")

// ErrMissingMongoURI is returned when MONGO_URI is not set.
var ErrMissingMongoURI = errors.New("config: MONGO_URI is required")

// Load reads configuration from the environment. A .env file is loaded
// first if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	sessionExpiry := time.Hour
	if exp := os.Getenv("SESSION_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			sessionExpiry = parsed
		}
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		SessionExpiry:      sessionExpiry,
		MongoURI:           getEnv("MONGO_URI", ""),
		MongoDatabase:      getEnv("MONGO_DATABASE", "real_estate"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		StaticDir:          getEnv("STATIC_DIR", "client/dist"),
		S3Bucket:           getEnv("S3_BUCKET", ""),
		S3Region:           getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:         getEnv("S3_ENDPOINT", ""),
		S3AccessKey:        getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:        getEnv("S3_SECRET_KEY", ""),
		S3PublicBaseURL:    getEnv("S3_PUBLIC_BASE_URL", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings the server cannot run without.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingSecret
	}
	if c.MongoURI == "" {
		return ErrMissingMongoURI
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
