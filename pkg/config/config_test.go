package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Joako199002/proyecto-alzarea/pkg/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-prueba")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "3000", cfg.Port)
	require.Equal(t, "development", cfg.Environment)
	require.True(t, cfg.IsDevelopment())
	require.Contains(t, cfg.AllowedOrigins, "http://localhost:3000")

	require.Equal(t, "https://api.groq.com/openai/v1", cfg.Groq.URL)
	require.Equal(t, "llama-3.3-70b-versatile", cfg.Groq.Model)
	require.Equal(t, 30*time.Second, cfg.Groq.Timeout())
	require.Equal(t, 1000, cfg.Groq.MaxTokens)
	require.InDelta(t, 0.7, cfg.Groq.Temperature, 1e-9)

	require.Equal(t, "uploads", cfg.Uploads.Dir)
	require.EqualValues(t, 10, cfg.Uploads.MaxSizeMB)
	require.Equal(t, 1000, cfg.Session.MaxSessions)
	require.Equal(t, 24*time.Hour, cfg.Session.IdleTTL())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-prueba")
	t.Setenv("PORT", "8081")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://a.test,https://b.test")
	t.Setenv("GROQ_TIMEOUT_SECONDS", "5")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "8081", cfg.Port)
	require.False(t, cfg.IsDevelopment())
	require.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.AllowedOrigins)
	require.Equal(t, 5*time.Second, cfg.Groq.Timeout())
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	_, err := config.Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "GROQ_API_KEY")
}
