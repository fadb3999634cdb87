package vectorstore

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/philippgille/chromem-go"
)

// indexEmbedding is the fixed vector of every entry in a file index collection.
var indexEmbedding = []float32{1}

// ChromemStore keeps collections in an embedded chromem-go database.
// Embeddings are always supplied by the caller, so collections carry no embedding function.
// chromem has no way to enumerate a collection, so each collection is paired with
// an index collection holding one fixed-vector entry per document ID.
type ChromemStore struct {
	db *chromem.DB
}

// NewChromemStore opens a persistent database rooted at path, or an in-memory one when path is empty.
func NewChromemStore(path string, compress bool) (*ChromemStore, error) {
	if path == "" {
		return &ChromemStore{db: chromem.NewDB()}, nil
	}
	db, err := chromem.NewPersistentDB(path, compress)
	if err != nil {
		return nil, fmt.Errorf("failed to open vector storage at %s: %w", path, err)
	}
	return &ChromemStore{db: db}, nil
}

func (s *ChromemStore) Upsert(ctx context.Context, collection string, doc Document) error {
	col, err := s.db.GetOrCreateCollection(collection, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to open collection %s: %w", collection, err)
	}
	err = col.AddDocument(ctx, chromem.Document{
		ID:        doc.ID,
		Metadata:  maps.Clone(doc.Metadata),
		Embedding: doc.Embedding,
		Content:   doc.Content,
	})
	if err != nil {
		return fmt.Errorf("failed to store document %s: %w", doc.ID, err)
	}

	index, err := s.db.GetOrCreateCollection(indexName(collection), nil, nil)
	if err != nil {
		return fmt.Errorf("failed to open index for %s: %w", collection, err)
	}
	err = index.AddDocument(ctx, chromem.Document{
		ID:        doc.ID,
		Content:   doc.ID,
		Embedding: indexEmbedding,
	})
	if err != nil {
		return fmt.Errorf("failed to index document %s: %w", doc.ID, err)
	}
	return nil
}

func (s *ChromemStore) HasCollection(_ context.Context, collection string) (bool, error) {
	return s.db.GetCollection(collection, nil) != nil, nil
}

func (s *ChromemStore) List(ctx context.Context, collection string) ([]string, error) {
	index := s.db.GetCollection(indexName(collection), nil)
	if index == nil || index.Count() == 0 {
		return []string{}, nil
	}

	results, err := index.QueryEmbedding(ctx, indexEmbedding, index.Count(), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list collection %s: %w", collection, err)
	}
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	slices.Sort(ids)
	return ids, nil
}

func (s *ChromemStore) Query(ctx context.Context, collection string, embedding []float32, k int) ([]Hit, error) {
	col := s.db.GetCollection(collection, nil)
	if col == nil {
		return nil, fmt.Errorf("collection %s: %w", collection, ErrCollectionNotFound)
	}
	if k < 1 {
		return nil, ErrInvalidTopK
	}

	count := col.Count()
	if count == 0 {
		return []Hit{}, nil
	}
	k = min(k, count)

	results, err := col.QueryEmbedding(ctx, embedding, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query collection %s: %w", collection, err)
	}

	hits := make([]Hit, 0, len(results))
	for _, r := range results {
		hits = append(hits, Hit{
			ID:         r.ID,
			Content:    r.Content,
			Metadata:   r.Metadata,
			Similarity: r.Similarity,
		})
	}
	return hits, nil
}

// indexName never collides with CollectionName, which always starts with "agent_".
func indexName(collection string) string {
	return "files:" + collection
}

// Close is a no-op; chromem persists every write as it happens.
func (s *ChromemStore) Close() error {
	return nil
}
