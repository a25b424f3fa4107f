package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	req "github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/hydraping_test")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "")

	cfg, err := Load()
	req.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.False(t, cfg.CORSAllowCredentials)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoadRequiredVars(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "s3cret")

	_, err := Load()
	req.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")

	t.Setenv("DATABASE_URL", "postgres://localhost/hydraping_test")
	t.Setenv("JWT_SECRET", "")

	_, err = Load()
	req.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadCORS(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/hydraping_test")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "1")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example ")

	cfg, err := Load()
	req.NoError(t, err)
	assert.True(t, cfg.CORSAllowCredentials)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)

	// unparseable bool falls back to the default
	t.Setenv("CORS_ALLOW_CREDENTIALS", "not-a-bool")
	cfg, err = Load()
	req.NoError(t, err)
	assert.False(t, cfg.CORSAllowCredentials)
}
