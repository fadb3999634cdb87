package registryserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mattewlondono22/smartagents-desktop/internal/registry/service"
	"github.com/mattewlondono22/smartagents-desktop/internal/version"
	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
)

const (
	serverName     = "agent-studio-mcp"
	defaultSearchK = 5
)

// NewServer constructs an MCP server exposing registry discovery tools.
// The semantic_search and list_agent_files tools are only added when search is non-nil.
func NewServer(registry service.RegistryService, search service.SearchService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version.Version,
	}, &mcp.ServerOptions{
		HasTools: true,
	})

	addAgentTools(server, registry)
	addToolTools(server, registry)
	addOnboardingTools(server, registry)
	if search != nil {
		addSearchTools(server, search)
	}
	addMetaTools(server)

	return server
}

// AgentListResult wraps agents because tool output must be an object.
type AgentListResult struct {
	Agents []models.Agent `json:"agents"`
	Count  int            `json:"count"`
}

// ToolListResult wraps registered tools.
type ToolListResult struct {
	Tools []models.Tool `json:"tools"`
	Count int           `json:"count"`
}

// OnboardingResult wraps the onboarding sequence.
type OnboardingResult struct {
	Steps []models.OnboardingStep `json:"steps"`
}

type agentFilesArgs struct {
	AgentID string `json:"agent_id" jsonschema:"agent whose embedded files are listed"`
}

type searchArgs struct {
	AgentID string `json:"agent_id" jsonschema:"agent whose documents are searched"`
	Query   string `json:"query" jsonschema:"free-text query"`
	TopK    int    `json:"top_k,omitempty" jsonschema:"maximum number of results, defaults to 5"`
}

func addAgentTools(server *mcp.Server, registry service.RegistryService) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_agents",
		Description: "List all registered agents in insertion order",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, AgentListResult, error) {
		agents, err := registry.ListAgents(ctx)
		if err != nil {
			return nil, AgentListResult{}, err
		}
		out := AgentListResult{Agents: make([]models.Agent, len(agents)), Count: len(agents)}
		for i, a := range agents {
			out.Agents[i] = a.Normalized()
		}
		return nil, out, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_agent",
		Description: "Fetch a single agent by id",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args struct {
		ID string `json:"id"`
	}) (*mcp.CallToolResult, models.Agent, error) {
		if args.ID == "" {
			return nil, models.Agent{}, fmt.Errorf("id is required")
		}
		agent, err := registry.GetAgent(ctx, args.ID)
		if err != nil {
			return nil, models.Agent{}, err
		}
		return nil, agent.Normalized(), nil
	})
}

func addToolTools(server *mcp.Server, registry service.RegistryService) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_tools",
		Description: "List all registered tools",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, ToolListResult, error) {
		tools, err := registry.ListTools(ctx)
		if err != nil {
			return nil, ToolListResult{}, err
		}
		out := ToolListResult{Tools: make([]models.Tool, len(tools)), Count: len(tools)}
		for i, t := range tools {
			out.Tools[i] = *t
		}
		return nil, out, nil
	})
}

func addOnboardingTools(server *mcp.Server, registry service.RegistryService) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_onboarding_steps",
		Description: "Return the onboarding wizard steps",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, OnboardingResult, error) {
		steps, err := registry.OnboardingSteps(ctx)
		if err != nil {
			return nil, OnboardingResult{}, err
		}
		return nil, OnboardingResult{Steps: steps}, nil
	})
}

func addSearchTools(server *mcp.Server, search service.SearchService) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "semantic_search",
		Description: "Search an agent's embedded documents by meaning",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args searchArgs) (*mcp.CallToolResult, models.SearchResponse, error) {
		if args.AgentID == "" || args.Query == "" {
			return nil, models.SearchResponse{}, fmt.Errorf("agent_id and query are required")
		}
		topK := args.TopK
		if topK == 0 {
			topK = defaultSearchK
		}
		resp, err := search.Search(ctx, args.AgentID, args.Query, topK)
		if err != nil {
			return nil, models.SearchResponse{}, err
		}
		return nil, *resp, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_agent_files",
		Description: "List the file names embedded for an agent",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args agentFilesArgs) (*mcp.CallToolResult, models.AgentFilesResponse, error) {
		if args.AgentID == "" {
			return nil, models.AgentFilesResponse{}, fmt.Errorf("agent_id is required")
		}
		resp, err := search.ListFiles(ctx, args.AgentID)
		if err != nil {
			return nil, models.AgentFilesResponse{}, err
		}
		return nil, *resp, nil
	})
}

func addMetaTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "studio_health",
		Description: "Simple health check for the studio MCP bridge",
	}, func(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, map[string]string, error) {
		return nil, map[string]string{"status": "ok"}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "studio_version",
		Description: "Return studio build metadata",
	}, func(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, map[string]string, error) {
		return nil, map[string]string{
			"version":    version.Version,
			"git_commit": version.GitCommit,
			"serverName": serverName,
		}, nil
	})
}
