package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings for the advisor backend.
type Config struct {
	// HTTP listen port, e.g. "3000"
	Port string `env:"PORT" envDefault:"3000"`

	// Environment gates error detail echoing and log level:
	// "development" or "production".
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// AllowedOrigins is the CORS allow-list.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"https://proyecto-alzarea.netlify.app,http://localhost:3000"`

	Groq    GroqConfig
	Uploads UploadConfig
	Session SessionConfig
}

// GroqConfig configures the completion gateway.
type GroqConfig struct {
	// APIKey authenticates against the Groq API. Required.
	APIKey string `env:"GROQ_API_KEY"`

	// URL is the OpenAI-compatible base URL.
	URL string `env:"GROQ_API_URL" envDefault:"https://api.groq.com/openai/v1"`

	// Model used for all completions.
	Model string `env:"GROQ_MODEL" envDefault:"llama-3.3-70b-versatile"`

	// TimeoutSeconds bounds a single completion call.
	TimeoutSeconds int `env:"GROQ_TIMEOUT_SECONDS" envDefault:"30"`

	MaxTokens   int     `env:"GROQ_MAX_TOKENS" envDefault:"1000"`
	Temperature float64 `env:"GROQ_TEMPERATURE" envDefault:"0.7"`
}

// UploadConfig configures image upload handling and static serving.
type UploadConfig struct {
	// Dir is where uploaded images land.
	Dir string `env:"UPLOAD_DIR" envDefault:"uploads"`

	// ImagesDir holds the catalog imagery served under /imagenes.
	ImagesDir string `env:"IMAGES_DIR" envDefault:"imagenes"`

	// MaxSizeMB caps a single upload.
	MaxSizeMB int64 `env:"MAX_UPLOAD_MB" envDefault:"10"`
}

// SessionConfig bounds the in-memory session store.
type SessionConfig struct {
	// MaxSessions is the LRU eviction ceiling.
	MaxSessions int `env:"MAX_SESSIONS" envDefault:"1000"`

	// IdleTTLMinutes is how long an inactive session survives.
	IdleTTLMinutes int `env:"SESSION_IDLE_TTL_MINUTES" envDefault:"1440"`
}

// Load loads .env (if present) and parses environment variables into Config.
func Load() (Config, error) {
	// Load .env if available; ignore error if file does not exist
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Groq.APIKey == "" {
		return Config{}, fmt.Errorf("GROQ_API_KEY is empty")
	}
	if cfg.Groq.TimeoutSeconds <= 0 {
		return Config{}, fmt.Errorf("GROQ_TIMEOUT_SECONDS must be > 0")
	}
	if cfg.Session.MaxSessions <= 0 {
		return Config{}, fmt.Errorf("MAX_SESSIONS must be > 0")
	}
	return cfg, nil
}

// IsDevelopment reports whether error detail may be echoed to clients.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Timeout returns the completion deadline as a duration.
func (g GroqConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// IdleTTL returns the session inactivity limit as a duration.
func (s SessionConfig) IdleTTL() time.Duration {
	return time.Duration(s.IdleTTLMinutes) * time.Minute
}
