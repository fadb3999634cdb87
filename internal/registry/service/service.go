package service

import (
	"context"
	"errors"
	"time"

	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
)

// ErrFileNotFound is returned by the placeholder embed when the file path cannot be stat'ed.
var ErrFileNotFound = errors.New("file not found")

const (
	StatusAgentDeleted   = "Agent deleted successfully"
	StatusFileQueued     = "File queued for embedding"
	StatusEmbedded       = "Embedded successfully"
	OperationUpload      = "upload"
	OperationSearchQuery = "search"
)

// RegistryService defines the interface for registry operations
type RegistryService interface {
	// ListAgents returns every agent in insertion order
	ListAgents(ctx context.Context) ([]*models.Agent, error)
	// GetAgent returns a single agent by id
	GetAgent(ctx context.Context, id string) (*models.Agent, error)
	// CreateAgent inserts an agent, assigning a UUID when the id is empty
	CreateAgent(ctx context.Context, agent *models.Agent) (*models.Agent, error)
	// DeleteAgent removes an agent by id
	DeleteAgent(ctx context.Context, id string) error

	// ListTools returns every registered tool in insertion order
	ListTools(ctx context.Context) ([]*models.Tool, error)
	// RegisterTool inserts a tool
	RegisterTool(ctx context.Context, tool *models.Tool) (*models.Tool, error)

	// EmbedFile acknowledges a file for an agent without reading it
	EmbedFile(ctx context.Context, filePath, agentID string) (*models.FileEmbedResponse, error)
	// OnboardingSteps returns the fixed onboarding sequence
	OnboardingSteps(ctx context.Context) ([]models.OnboardingStep, error)
}

// SearchService defines the interface for the semantic search service
type SearchService interface {
	// ListAgents returns the search service's fixed agent list
	ListAgents(ctx context.Context) ([]*models.Agent, error)
	// CreateAgent echoes the agent back without storing it
	CreateAgent(ctx context.Context, agent *models.Agent) (*models.Agent, error)
	// Upload embeds a whole file into the agent's collection, replacing a file with the same name
	Upload(ctx context.Context, agentID, fileName string, content []byte) (*models.UploadResponse, error)
	// Search returns up to topK documents from the agent's collection nearest to the query
	Search(ctx context.Context, agentID, query string, topK int) (*models.SearchResponse, error)
	// ListFiles returns the sorted names of the files embedded for an agent
	ListFiles(ctx context.Context, agentID string) (*models.AgentFilesResponse, error)
}

// EmbeddingObserver receives the outcome of each embedding operation.
type EmbeddingObserver interface {
	ObserveEmbedding(ctx context.Context, operation string, elapsed time.Duration, err error)
}
