package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/insightx?sslmode=disable")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Addr)
	assert.False(t, cfg.BlockOnEmailFailure)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "Insight X", cfg.Mail.FromName)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/insightx?sslmode=disable")
	t.Setenv("ADDR", ":9000")
	t.Setenv("BLOCK_ON_EMAIL_FAILURE", "true")
	t.Setenv("CORS_ALLOWED_ORIGIN", "https://insight-x.example.edu")
	t.Setenv("SMTP_HOST", "smtp.example.edu")
	t.Setenv("SMTP_PORT", "2525")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.True(t, cfg.BlockOnEmailFailure)
	assert.Equal(t, "https://insight-x.example.edu", cfg.AllowedOrigin)
	assert.Equal(t, "smtp.example.edu", cfg.SMTP.Host)
	assert.Equal(t, 2525, cfg.SMTP.Port)
}

func TestFromEnvRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := FromEnv()
	require.Error(t, err)
}
