package config

import "fmt"

// Validate performs runtime validations on the loaded configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.RegistryAddress == "" && cfg.SearchAddress == "" {
		return fmt.Errorf("at least one of registry or search address must be set")
	}
	if _, err := cfg.MaxUploadBytes(); err != nil {
		return err
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive (got %s)", cfg.ShutdownTimeout)
	}

	switch cfg.Embeddings.Provider {
	case "ollama":
	case "openai":
		if cfg.Embeddings.BaseURL == "" {
			return fmt.Errorf("embeddings base URL must be specified for the openai provider")
		}
	default:
		return fmt.Errorf("unknown embeddings provider %q (supported: ollama, openai)", cfg.Embeddings.Provider)
	}
	if cfg.Embeddings.Model == "" {
		return fmt.Errorf("embeddings model must be specified")
	}

	switch cfg.VectorStore.Backend {
	case "chromem":
	case "postgres":
		if cfg.VectorStore.DatabaseURL == "" {
			return fmt.Errorf("vector store database URL must be specified for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown vector store backend %q (supported: chromem, postgres)", cfg.VectorStore.Backend)
	}
	return nil
}
