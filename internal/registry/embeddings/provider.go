package embeddings

import (
	"context"
	"fmt"
	"time"

	"github.com/philippgille/chromem-go"

	"github.com/mattewlondono22/smartagents-desktop/internal/registry/config"
)

const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

// Payload is the text handed to the embedding model.
type Payload struct {
	Text string
}

// Result is a single embedding produced by a Provider.
type Result struct {
	Vector      []float32
	Provider    string
	Model       string
	Dimensions  int
	GeneratedAt time.Time
}

// Provider turns text into a fixed-length vector. Implementations wrap an external model.
type Provider interface {
	Generate(ctx context.Context, payload Payload) (*Result, error)
}

// FuncProvider adapts a chromem-go embedding function into a Provider.
type FuncProvider struct {
	name  string
	model string
	fn    chromem.EmbeddingFunc
}

// NewFuncProvider wraps fn. name and model are only reported back in results.
func NewFuncProvider(name, model string, fn chromem.EmbeddingFunc) *FuncProvider {
	return &FuncProvider{name: name, model: model, fn: fn}
}

// NewProvider builds the configured embedding backend.
// For ollama, BaseURL is the API root (for example http://localhost:11434/api); empty uses the local default.
func NewProvider(cfg config.EmbeddingsConfig) (*FuncProvider, error) {
	switch cfg.Provider {
	case ProviderOllama:
		return NewFuncProvider(ProviderOllama, cfg.Model, chromem.NewEmbeddingFuncOllama(cfg.Model, cfg.BaseURL)), nil
	case ProviderOpenAI:
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("base URL is required for the %s provider", ProviderOpenAI)
		}
		return NewFuncProvider(ProviderOpenAI, cfg.Model, chromem.NewEmbeddingFuncOpenAICompat(cfg.BaseURL, cfg.APIKey, cfg.Model, nil)), nil
	default:
		return nil, fmt.Errorf("unknown embeddings provider: %s (supported: %s, %s)", cfg.Provider, ProviderOllama, ProviderOpenAI)
	}
}

// Generate computes one embedding for the whole payload text.
func (p *FuncProvider) Generate(ctx context.Context, payload Payload) (*Result, error) {
	vector, err := p.fn(ctx, payload.Text)
	if err != nil {
		return nil, fmt.Errorf("%s embedding failed: %w", p.name, err)
	}
	return &Result{
		Vector:      vector,
		Provider:    p.name,
		Model:       p.model,
		Dimensions:  len(vector),
		GeneratedAt: time.Now().UTC(),
	}, nil
}
