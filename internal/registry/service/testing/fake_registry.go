// Package testing provides test utilities for the registry service.
package testing

import (
	"context"
	"fmt"
	"sync"

	"github.com/mattewlondono22/smartagents-desktop/internal/registry/database"
	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
)

// FakeRegistry is a configurable fake implementation of service.RegistryService for testing.
// It supports both data-driven setup via struct fields and function hooks for custom behavior.
type FakeRegistry struct {
	mu sync.Mutex

	// Data fields for simple data-driven tests
	Agents     []*models.Agent
	Tools      []*models.Tool
	Onboarding []models.OnboardingStep

	// Function hooks for custom behavior (take precedence over data fields when set)
	ListAgentsFn      func(ctx context.Context) ([]*models.Agent, error)
	GetAgentFn        func(ctx context.Context, id string) (*models.Agent, error)
	CreateAgentFn     func(ctx context.Context, agent *models.Agent) (*models.Agent, error)
	DeleteAgentFn     func(ctx context.Context, id string) error
	ListToolsFn       func(ctx context.Context) ([]*models.Tool, error)
	RegisterToolFn    func(ctx context.Context, tool *models.Tool) (*models.Tool, error)
	EmbedFileFn       func(ctx context.Context, filePath, agentID string) (*models.FileEmbedResponse, error)
	OnboardingStepsFn func(ctx context.Context) ([]models.OnboardingStep, error)
}

// NewFakeRegistry creates a new FakeRegistry with default empty data.
func NewFakeRegistry() *FakeRegistry {
	return &FakeRegistry{}
}

func (f *FakeRegistry) ListAgents(ctx context.Context) ([]*models.Agent, error) {
	if f.ListAgentsFn != nil {
		return f.ListAgentsFn(ctx)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*models.Agent(nil), f.Agents...), nil
}

func (f *FakeRegistry) GetAgent(ctx context.Context, id string) (*models.Agent, error) {
	if f.GetAgentFn != nil {
		return f.GetAgentFn(ctx, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, agent := range f.Agents {
		if agent.ID == id {
			return agent, nil
		}
	}
	return nil, fmt.Errorf("agent %q: %w", id, database.ErrNotFound)
}

func (f *FakeRegistry) CreateAgent(ctx context.Context, agent *models.Agent) (*models.Agent, error) {
	if f.CreateAgentFn != nil {
		return f.CreateAgentFn(ctx, agent)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.Agents {
		if existing.ID == agent.ID {
			return nil, fmt.Errorf("agent %q: %w", agent.ID, database.ErrAlreadyExists)
		}
	}
	created := agent.Normalized()
	f.Agents = append(f.Agents, &created)
	return &created, nil
}

func (f *FakeRegistry) DeleteAgent(ctx context.Context, id string) error {
	if f.DeleteAgentFn != nil {
		return f.DeleteAgentFn(ctx, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, agent := range f.Agents {
		if agent.ID == id {
			f.Agents = append(f.Agents[:i], f.Agents[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("agent %q: %w", id, database.ErrNotFound)
}

func (f *FakeRegistry) ListTools(ctx context.Context) ([]*models.Tool, error) {
	if f.ListToolsFn != nil {
		return f.ListToolsFn(ctx)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*models.Tool(nil), f.Tools...), nil
}

func (f *FakeRegistry) RegisterTool(ctx context.Context, tool *models.Tool) (*models.Tool, error) {
	if f.RegisterToolFn != nil {
		return f.RegisterToolFn(ctx, tool)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.Tools {
		if existing.ID == tool.ID {
			return nil, fmt.Errorf("tool %q: %w", tool.ID, database.ErrAlreadyExists)
		}
	}
	registered := *tool
	f.Tools = append(f.Tools, &registered)
	return &registered, nil
}

func (f *FakeRegistry) EmbedFile(ctx context.Context, filePath, agentID string) (*models.FileEmbedResponse, error) {
	if f.EmbedFileFn != nil {
		return f.EmbedFileFn(ctx, filePath, agentID)
	}
	return &models.FileEmbedResponse{
		FilePath: filePath,
		AgentID:  agentID,
		Status:   "File queued for embedding",
	}, nil
}

func (f *FakeRegistry) OnboardingSteps(ctx context.Context) ([]models.OnboardingStep, error) {
	if f.OnboardingStepsFn != nil {
		return f.OnboardingStepsFn(ctx)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.OnboardingStep(nil), f.Onboarding...), nil
}
