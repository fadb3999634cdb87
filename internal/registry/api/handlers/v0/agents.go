package v0

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mattewlondono22/smartagents-desktop/internal/registry/database"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/service"
	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
	"github.com/mattewlondono22/smartagents-desktop/pkg/types"
)

// AgentIDInput represents an agent path parameter
type AgentIDInput struct {
	AgentID string `path:"agentId" json:"agentId" doc:"Agent ID" example:"data_analyst"`
}

// CreateAgentInput represents the create agent request body
type CreateAgentInput struct {
	Body models.Agent
}

// RegisterAgentsEndpoints registers the agent registry endpoints with a custom path prefix
func RegisterAgentsEndpoints(api huma.API, pathPrefix string, registry service.RegistryService) {
	tags := []string{"agents"}
	suffix := strings.ReplaceAll(pathPrefix, "/", "-")

	huma.Register(api, huma.Operation{
		OperationID: "list-agents" + suffix,
		Method:      http.MethodGet,
		Path:        pathPrefix + "/agents",
		Summary:     "List agents",
		Description: "List all registered agents in insertion order",
		Tags:        tags,
	}, func(ctx context.Context, _ *struct{}) (*types.Response[[]models.Agent], error) {
		agents, err := registry.ListAgents(ctx)
		if err != nil {
			return nil, huma.Error500InternalServerError("Failed to list agents", err)
		}
		out := make([]models.Agent, 0, len(agents))
		for _, agent := range agents {
			out = append(out, agent.Normalized())
		}
		return &types.Response[[]models.Agent]{Body: out}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-agent" + suffix,
		Method:      http.MethodGet,
		Path:        pathPrefix + "/agents/{agentId}",
		Summary:     "Get agent",
		Description: "Get a single agent by ID",
		Tags:        tags,
	}, func(ctx context.Context, input *AgentIDInput) (*types.Response[models.Agent], error) {
		agent, err := registry.GetAgent(ctx, input.AgentID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return nil, huma.Error404NotFound("Agent not found")
			}
			return nil, huma.Error500InternalServerError("Failed to get agent", err)
		}
		return &types.Response[models.Agent]{Body: agent.Normalized()}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "create-agent" + suffix,
		Method:      http.MethodPost,
		Path:        pathPrefix + "/agents",
		Summary:     "Create agent",
		Description: "Register a new agent. An empty id is replaced with a generated UUID.",
		Tags:        tags,
	}, func(ctx context.Context, input *CreateAgentInput) (*types.Response[models.Agent], error) {
		created, err := registry.CreateAgent(ctx, &input.Body)
		if err != nil {
			if errors.Is(err, database.ErrAlreadyExists) {
				return nil, huma.Error400BadRequest("Agent already exists")
			}
			return nil, huma.Error500InternalServerError("Failed to create agent", err)
		}
		return &types.Response[models.Agent]{Body: created.Normalized()}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-agent" + suffix,
		Method:      http.MethodDelete,
		Path:        pathPrefix + "/agents/{agentId}",
		Summary:     "Delete agent",
		Description: "Delete an agent by ID",
		Tags:        tags,
	}, func(ctx context.Context, input *AgentIDInput) (*types.Response[models.AgentDeletedResponse], error) {
		if err := registry.DeleteAgent(ctx, input.AgentID); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return nil, huma.Error404NotFound("Agent not found")
			}
			return nil, huma.Error500InternalServerError("Failed to delete agent", err)
		}
		return &types.Response[models.AgentDeletedResponse]{
			Body: models.AgentDeletedResponse{Status: service.StatusAgentDeleted},
		}, nil
	})
}
