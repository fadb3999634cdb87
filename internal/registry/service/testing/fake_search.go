package testing

import (
	"context"

	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
)

// FakeSearch is a configurable fake implementation of service.SearchService for testing.
type FakeSearch struct {
	Agents []*models.Agent

	CreateAgentFn func(ctx context.Context, agent *models.Agent) (*models.Agent, error)
	UploadFn      func(ctx context.Context, agentID, fileName string, content []byte) (*models.UploadResponse, error)
	SearchFn      func(ctx context.Context, agentID, query string, topK int) (*models.SearchResponse, error)
	ListFilesFn   func(ctx context.Context, agentID string) (*models.AgentFilesResponse, error)
}

// NewFakeSearch creates a new FakeSearch with no agents.
func NewFakeSearch() *FakeSearch {
	return &FakeSearch{}
}

func (f *FakeSearch) ListAgents(_ context.Context) ([]*models.Agent, error) {
	return f.Agents, nil
}

func (f *FakeSearch) CreateAgent(ctx context.Context, agent *models.Agent) (*models.Agent, error) {
	if f.CreateAgentFn != nil {
		return f.CreateAgentFn(ctx, agent)
	}
	echoed := agent.Normalized()
	return &echoed, nil
}

func (f *FakeSearch) Upload(ctx context.Context, agentID, fileName string, content []byte) (*models.UploadResponse, error) {
	if f.UploadFn != nil {
		return f.UploadFn(ctx, agentID, fileName, content)
	}
	return &models.UploadResponse{FileName: fileName, AgentID: agentID, Status: "Embedded successfully"}, nil
}

func (f *FakeSearch) Search(ctx context.Context, agentID, query string, topK int) (*models.SearchResponse, error) {
	if f.SearchFn != nil {
		return f.SearchFn(ctx, agentID, query, topK)
	}
	return &models.SearchResponse{Query: query, Results: []models.SearchResult{}}, nil
}

func (f *FakeSearch) ListFiles(ctx context.Context, agentID string) (*models.AgentFilesResponse, error) {
	if f.ListFilesFn != nil {
		return f.ListFilesFn(ctx, agentID)
	}
	return &models.AgentFilesResponse{AgentID: agentID, Files: []string{}}, nil
}
