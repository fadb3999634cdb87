package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mattewlondono22/smartagents-desktop/internal/registry/embeddings"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/logging"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/vectorstore"
	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
)

// searchServiceImpl implements SearchService over an embedding provider and a vector store.
type searchServiceImpl struct {
	provider embeddings.Provider
	store    vectorstore.Store
	observer EmbeddingObserver
}

// NewSearchService creates a search service. observer may be nil.
func NewSearchService(provider embeddings.Provider, store vectorstore.Store, observer EmbeddingObserver) SearchService {
	return &searchServiceImpl{
		provider: provider,
		store:    store,
		observer: observer,
	}
}

// ListAgents returns the single agent the search service knows about.
func (s *searchServiceImpl) ListAgents(_ context.Context) ([]*models.Agent, error) {
	return []*models.Agent{{
		ID:           "data_analyst",
		Name:         "Data Analyst",
		Description:  "Specializes in data analysis and visualization",
		Capabilities: []string{"data_processing", "visualization", "statistical_analysis"},
	}}, nil
}

func (s *searchServiceImpl) CreateAgent(_ context.Context, agent *models.Agent) (*models.Agent, error) {
	if agent == nil {
		return nil, fmt.Errorf("agent is required")
	}
	echoed := agent.Normalized()
	return &echoed, nil
}

func (s *searchServiceImpl) Upload(ctx context.Context, agentID, fileName string, content []byte) (resp *models.UploadResponse, err error) {
	start := time.Now()
	defer func() { s.observe(ctx, OperationUpload, start, err) }()

	text, err := embeddings.DecodeText(content)
	if err != nil {
		return nil, err
	}

	embedding, err := embeddings.GenerateSemanticEmbedding(ctx, s.provider, text)
	if err != nil {
		return nil, err
	}

	err = s.store.Upsert(ctx, vectorstore.CollectionName(agentID), vectorstore.Document{
		ID:        fileName,
		Content:   text,
		Embedding: embedding.Vector,
		Metadata: map[string]string{
			"agent_id":  agentID,
			"file_name": fileName,
		},
	})
	if err != nil {
		return nil, err
	}

	logging.Log(ctx, logging.VectorStoreLog, zapcore.InfoLevel, "Document embedded",
		zap.String("agent_id", agentID),
		zap.String("file_name", fileName),
		zap.Int("dimensions", embedding.Dimensions),
		zap.String("checksum", embedding.Checksum),
	)

	return &models.UploadResponse{
		FileName: fileName,
		AgentID:  agentID,
		Status:   StatusEmbedded,
	}, nil
}

func (s *searchServiceImpl) Search(ctx context.Context, agentID, query string, topK int) (resp *models.SearchResponse, err error) {
	start := time.Now()
	defer func() { s.observe(ctx, OperationSearchQuery, start, err) }()

	collection := vectorstore.CollectionName(agentID)
	exists, err := s.store.HasCollection(ctx, collection)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("collection %s: %w", collection, vectorstore.ErrCollectionNotFound)
	}

	embedding, err := embeddings.GenerateSemanticEmbedding(ctx, s.provider, query)
	if err != nil {
		return nil, err
	}

	hits, err := s.store.Query(ctx, collection, embedding.Vector, topK)
	if err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(hits))
	for _, hit := range hits {
		metadata := hit.Metadata
		if metadata == nil {
			metadata = map[string]string{}
		}
		results = append(results, models.SearchResult{
			Document: hit.Content,
			Metadata: metadata,
		})
	}

	return &models.SearchResponse{
		Query:   query,
		Results: results,
	}, nil
}

func (s *searchServiceImpl) ListFiles(ctx context.Context, agentID string) (*models.AgentFilesResponse, error) {
	files, err := s.store.List(ctx, vectorstore.CollectionName(agentID))
	if err != nil {
		return nil, err
	}
	return &models.AgentFilesResponse{AgentID: agentID, Files: files}, nil
}

func (s *searchServiceImpl) observe(ctx context.Context, operation string, start time.Time, err error) {
	if s.observer == nil {
		return
	}
	s.observer.ObserveEmbedding(ctx, operation, time.Since(start), err)
}
