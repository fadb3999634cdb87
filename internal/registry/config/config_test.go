package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.RegistryAddress)
	assert.Equal(t, ":8001", cfg.SearchAddress)
	assert.True(t, cfg.SeedBuiltin)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "ollama", cfg.Embeddings.Provider)
	assert.Equal(t, "all-minilm", cfg.Embeddings.Model)
	assert.Equal(t, "chromem", cfg.VectorStore.Backend)
	assert.Equal(t, "./vector_storage", cfg.VectorStore.Path)
	assert.Equal(t, 0.1, cfg.Logging.SuccessSampleRate)

	size, err := cfg.MaxUploadBytes()
	require.NoError(t, err)
	assert.Equal(t, int64(32*1024*1024), size)
}

func TestNewConfig_RespectsEnvOverride(t *testing.T) {
	t.Setenv("AGENT_STUDIO_REGISTRY_ADDRESS", "127.0.0.1:9000")
	t.Setenv("AGENT_STUDIO_CORS_ALLOWED_ORIGINS", "http://localhost:1420,tauri://localhost")
	t.Setenv("AGENT_STUDIO_VECTOR_STORE_PATH", "/data/vectors")
	t.Setenv("AGENT_STUDIO_SEED_BUILTIN", "false")
	t.Setenv("AGENT_STUDIO_LOG_SUCCESS_SAMPLE_RATE", "1")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.RegistryAddress)
	assert.Equal(t, []string{"http://localhost:1420", "tauri://localhost"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "/data/vectors", cfg.VectorStore.Path)
	assert.False(t, cfg.SeedBuiltin)
	assert.Equal(t, 1.0, cfg.Logging.SuccessSampleRate)
}

func TestNewConfig_RejectsInvalid(t *testing.T) {
	t.Setenv("AGENT_STUDIO_VECTOR_STORE_BACKEND", "postgres")

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database URL")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			RegistryAddress: ":8000",
			MaxUploadSize:   "1MB",
			ShutdownTimeout: time.Second,
			Embeddings:      EmbeddingsConfig{Provider: "ollama", Model: "all-minilm"},
			VectorStore:     VectorStoreConfig{Backend: "chromem"},
		}
	}

	require.NoError(t, Validate(valid()))
	assert.Error(t, Validate(nil))

	cfg := valid()
	cfg.MaxUploadSize = "lots"
	assert.Error(t, Validate(cfg))

	cfg = valid()
	cfg.Embeddings.Provider = "openai"
	assert.Error(t, Validate(cfg))
	cfg.Embeddings.BaseURL = "http://localhost:8080/v1"
	assert.NoError(t, Validate(cfg))

	cfg = valid()
	cfg.Embeddings.Provider = "sentence-transformers"
	assert.Error(t, Validate(cfg))

	cfg = valid()
	cfg.VectorStore.Backend = "chroma"
	assert.Error(t, Validate(cfg))
}
