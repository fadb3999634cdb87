// Package vectorstore holds per-agent document embeddings and answers nearest-neighbour queries.
package vectorstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/mattewlondono22/smartagents-desktop/internal/registry/config"
)

const (
	BackendChromem  = "chromem"
	BackendPostgres = "postgres"
)

var (
	// ErrCollectionNotFound is returned when querying a collection nothing was uploaded to.
	ErrCollectionNotFound = errors.New("collection does not exist")
	// ErrInvalidTopK is returned for a result count below one.
	ErrInvalidTopK = errors.New("number of requested results must be greater than 0")
)

// Document is one embedded file.
type Document struct {
	ID        string
	Content   string
	Metadata  map[string]string
	Embedding []float32
}

// Hit is a query match. Similarity is kept internal and never exposed over HTTP.
type Hit struct {
	ID         string
	Content    string
	Metadata   map[string]string
	Similarity float32
}

// Store is the vector database capability used by the search service.
type Store interface {
	// Upsert creates the collection if needed and replaces any document with the same ID.
	Upsert(ctx context.Context, collection string, doc Document) error
	// Query returns up to k nearest documents, most similar first.
	// k larger than the collection is clamped to its size.
	Query(ctx context.Context, collection string, embedding []float32, k int) ([]Hit, error)
	// HasCollection reports whether anything was ever upserted into collection.
	HasCollection(ctx context.Context, collection string) (bool, error)
	// List returns the IDs of the documents in collection, sorted. A missing collection lists empty.
	List(ctx context.Context, collection string) ([]string, error)
	Close() error
}

// CollectionName returns the collection holding an agent's documents.
func CollectionName(agentID string) string {
	return "agent_" + agentID
}

// New opens the configured backend.
func New(ctx context.Context, cfg config.VectorStoreConfig) (Store, error) {
	switch cfg.Backend {
	case BackendChromem:
		return NewChromemStore(cfg.Path, cfg.Compress)
	case BackendPostgres:
		return NewPostgresStore(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown vector store backend: %s", cfg.Backend)
	}
}
