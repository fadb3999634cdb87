// Package config loads the studio server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/docker/go-units"

	"github.com/mattewlondono22/smartagents-desktop/internal/registry/logging"
)

// EnvPrefix is prepended to every configuration variable.
const EnvPrefix = "AGENT_STUDIO_"

// Config holds the configuration for both studio services.
type Config struct {
	RegistryAddress    string        `env:"REGISTRY_ADDRESS" envDefault:":8000"`
	SearchAddress      string        `env:"SEARCH_ADDRESS" envDefault:":8001"`
	SeedBuiltin        bool          `env:"SEED_BUILTIN" envDefault:"true"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	MaxUploadSize      string        `env:"MAX_UPLOAD_SIZE" envDefault:"32MB"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MCPEnabled         bool          `env:"MCP_ENABLED" envDefault:"true"`

	Embeddings  EmbeddingsConfig  `envPrefix:"EMBEDDINGS_"`
	VectorStore VectorStoreConfig `envPrefix:"VECTOR_STORE_"`
	Logging     logging.EventLoggingConfig
}

// EmbeddingsConfig selects the embedding model backend.
type EmbeddingsConfig struct {
	// Provider is "ollama" or "openai" (any OpenAI-compatible endpoint).
	Provider string `env:"PROVIDER" envDefault:"ollama"`
	// Model defaults to all-MiniLM-L6-v2 as published by Ollama.
	Model   string `env:"MODEL" envDefault:"all-minilm"`
	BaseURL string `env:"BASE_URL"`
	APIKey  string `env:"API_KEY"`
}

// VectorStoreConfig selects the vector store backend.
type VectorStoreConfig struct {
	// Backend is "chromem" (embedded, on-disk) or "postgres" (pgvector).
	Backend     string `env:"BACKEND" envDefault:"chromem"`
	Path        string `env:"PATH" envDefault:"./vector_storage"`
	Compress    bool   `env:"COMPRESS" envDefault:"false"`
	DatabaseURL string `env:"DATABASE_URL"`
}

// NewConfig parses the environment into a Config and validates it.
func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MaxUploadBytes returns MaxUploadSize in bytes.
func (c *Config) MaxUploadBytes() (int64, error) {
	size, err := units.RAMInBytes(c.MaxUploadSize)
	if err != nil {
		return 0, fmt.Errorf("invalid max upload size %q: %w", c.MaxUploadSize, err)
	}
	return size, nil
}
