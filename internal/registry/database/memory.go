package database

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
)

// Memory is an in-process Database. Records live for the lifetime of the process.
// Listing returns records in insertion order.
type Memory struct {
	mu sync.RWMutex

	agents     map[string]models.Agent
	agentOrder []string

	tools     map[string]models.Tool
	toolOrder []string
}

// NewMemory creates an empty in-memory registry.
func NewMemory() *Memory {
	return &Memory{
		agents: make(map[string]models.Agent),
		tools:  make(map[string]models.Tool),
	}
}

func (m *Memory) ListAgents(ctx context.Context) ([]*models.Agent, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.Agent, 0, len(m.agentOrder))
	for _, id := range m.agentOrder {
		agent := cloneAgent(m.agents[id])
		out = append(out, &agent)
	}
	return out, nil
}

func (m *Memory) GetAgent(ctx context.Context, id string) (*models.Agent, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	agent, ok := m.agents[id]
	if !ok {
		return nil, fmt.Errorf("agent %q: %w", id, ErrNotFound)
	}
	agent = cloneAgent(agent)
	return &agent, nil
}

func (m *Memory) CreateAgent(ctx context.Context, agent *models.Agent) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if agent == nil {
		return fmt.Errorf("agent is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.agents[agent.ID]; exists {
		return fmt.Errorf("agent %q: %w", agent.ID, ErrAlreadyExists)
	}
	m.agents[agent.ID] = cloneAgent(*agent)
	m.agentOrder = append(m.agentOrder, agent.ID)
	return nil
}

func (m *Memory) DeleteAgent(ctx context.Context, id string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.agents[id]; !exists {
		return fmt.Errorf("agent %q: %w", id, ErrNotFound)
	}
	delete(m.agents, id)
	m.agentOrder = slices.DeleteFunc(m.agentOrder, func(existing string) bool {
		return existing == id
	})
	return nil
}

func (m *Memory) ListTools(ctx context.Context) ([]*models.Tool, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.Tool, 0, len(m.toolOrder))
	for _, id := range m.toolOrder {
		tool := m.tools[id]
		out = append(out, &tool)
	}
	return out, nil
}

func (m *Memory) CreateTool(ctx context.Context, tool *models.Tool) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if tool == nil {
		return fmt.Errorf("tool is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.tools[tool.ID]; exists {
		return fmt.Errorf("tool %q: %w", tool.ID, ErrAlreadyExists)
	}
	m.tools[tool.ID] = *tool
	m.toolOrder = append(m.toolOrder, tool.ID)
	return nil
}

// cloneAgent detaches the capability slice so callers cannot mutate stored records.
func cloneAgent(a models.Agent) models.Agent {
	a.Capabilities = slices.Clone(a.Capabilities)
	return a
}
