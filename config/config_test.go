package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"TURSO_DATABASE_URL", "TURSO_AUTH_TOKEN", "PORT", "ENV", "LOG_LEVEL", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "", cfg.DatabaseURL)
	assert.Equal(t, "", cfg.AuthToken)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TURSO_DATABASE_URL", "libsql://notes-example.turso.io")
	t.Setenv("TURSO_AUTH_TOKEN", "secret-token")
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://example.com")

	cfg := Load()

	assert.Equal(t, "libsql://notes-example.turso.io", cfg.DatabaseURL)
	assert.Equal(t, "secret-token", cfg.AuthToken)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://example.com", cfg.CORSOrigins)
	assert.True(t, cfg.IsProduction())
}
