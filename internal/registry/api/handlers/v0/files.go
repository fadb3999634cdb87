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

// EmbedFileInput represents the placeholder file embed query
type EmbedFileInput struct {
	FilePath string `query:"file_path" required:"true" doc:"Path of the file on the server host"`
	AgentID  string `query:"agent_id" required:"true" doc:"Agent the file belongs to"`
}

// RegisterFileEndpoints registers the placeholder file embedding endpoint
func RegisterFileEndpoints(api huma.API, pathPrefix string, registry service.RegistryService) {
	huma.Register(api, huma.Operation{
		OperationID: "embed-file" + strings.ReplaceAll(pathPrefix, "/", "-"),
		Method:      http.MethodPost,
		Path:        pathPrefix + "/file/embed",
		Summary:     "Queue file for embedding",
		Description: "Checks that the file and agent exist and acknowledges the request. The file is not read.",
		Tags:        []string{"files"},
	}, func(ctx context.Context, input *EmbedFileInput) (*types.Response[models.FileEmbedResponse], error) {
		resp, err := registry.EmbedFile(ctx, input.FilePath, input.AgentID)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrFileNotFound):
				return nil, huma.Error404NotFound("File not found")
			case errors.Is(err, database.ErrNotFound):
				return nil, huma.Error404NotFound("Agent not found")
			default:
				return nil, huma.Error500InternalServerError("Failed to embed file", err)
			}
		}
		return &types.Response[models.FileEmbedResponse]{Body: *resp}, nil
	})
}
