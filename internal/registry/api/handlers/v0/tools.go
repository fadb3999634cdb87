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

// RegisterToolInput represents the register tool request body
type RegisterToolInput struct {
	Body models.Tool
}

// RegisterToolsEndpoints registers the tool registry endpoints with a custom path prefix
func RegisterToolsEndpoints(api huma.API, pathPrefix string, registry service.RegistryService) {
	tags := []string{"tools"}
	suffix := strings.ReplaceAll(pathPrefix, "/", "-")

	huma.Register(api, huma.Operation{
		OperationID: "list-tools" + suffix,
		Method:      http.MethodGet,
		Path:        pathPrefix + "/tools",
		Summary:     "List tools",
		Description: "List all registered tools in insertion order",
		Tags:        tags,
	}, func(ctx context.Context, _ *struct{}) (*types.Response[[]models.Tool], error) {
		tools, err := registry.ListTools(ctx)
		if err != nil {
			return nil, huma.Error500InternalServerError("Failed to list tools", err)
		}
		out := make([]models.Tool, 0, len(tools))
		for _, tool := range tools {
			out = append(out, *tool)
		}
		return &types.Response[[]models.Tool]{Body: out}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "register-tool" + suffix,
		Method:      http.MethodPost,
		Path:        pathPrefix + "/tools",
		Summary:     "Register tool",
		Description: "Register a new tool",
		Tags:        tags,
	}, func(ctx context.Context, input *RegisterToolInput) (*types.Response[models.Tool], error) {
		tool, err := registry.RegisterTool(ctx, &input.Body)
		if err != nil {
			if errors.Is(err, database.ErrAlreadyExists) {
				return nil, huma.Error400BadRequest("Tool already exists")
			}
			return nil, huma.Error500InternalServerError("Failed to register tool", err)
		}
		return &types.Response[models.Tool]{Body: *tool}, nil
	})
}
