package embeddings

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// SemanticEmbedding is a generated vector plus the provenance stored alongside it.
type SemanticEmbedding struct {
	Vector     []float32
	Provider   string
	Model      string
	Dimensions int
	Checksum   string
	Generated  time.Time
}

// PayloadChecksum returns the deterministic checksum for an embedding payload.
func PayloadChecksum(payload string) string {
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// DecodeText validates uploaded bytes as UTF-8 and returns them as a string.
// The error names the first offending byte and its offset.
func DecodeText(content []byte) (string, error) {
	_, n, err := transform.Bytes(encoding.UTF8Validator, content)
	if err != nil {
		if n < len(content) {
			return "", fmt.Errorf("'utf-8' codec can't decode byte 0x%02x in position %d: %w", content[n], n, err)
		}
		return "", fmt.Errorf("'utf-8' codec can't decode content: %w", err)
	}
	return string(content), nil
}

// GenerateSemanticEmbedding transforms the provided payload into a SemanticEmbedding
// by invoking the configured provider. The whole payload is embedded as one unit.
func GenerateSemanticEmbedding(ctx context.Context, provider Provider, payload string) (*SemanticEmbedding, error) {
	if provider == nil {
		return nil, errors.New("embedding provider is not configured")
	}

	result, err := provider.Generate(ctx, Payload{Text: payload})
	if err != nil {
		return nil, err
	}
	if len(result.Vector) == 0 {
		return nil, errors.New("embedding provider returned an empty vector")
	}

	dims := result.Dimensions
	if dims == 0 {
		dims = len(result.Vector)
	}

	generated := result.GeneratedAt
	if generated.IsZero() {
		generated = time.Now().UTC()
	}

	return &SemanticEmbedding{
		Vector:     result.Vector,
		Provider:   result.Provider,
		Model:      result.Model,
		Dimensions: dims,
		Checksum:   PayloadChecksum(payload),
		Generated:  generated,
	}, nil
}
