package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "real_estate", cfg.MongoDatabase)
	assert.Equal(t, time.Hour, cfg.SessionExpiry)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestLoad_MissingMongoURI(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("MONGO_URI", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingMongoURI)
}

func TestLoad_OriginList(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:5173", "https://example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoad_SessionExpiryOverride(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("SESSION_EXPIRY", "30m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.SessionExpiry)
}
