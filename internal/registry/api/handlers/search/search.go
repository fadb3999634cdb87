// Package search contains the HTTP handlers of the semantic search service.
package search

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mattewlondono22/smartagents-desktop/internal/registry/service"
	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
	"github.com/mattewlondono22/smartagents-desktop/pkg/types"
)

// UploadFormField is the multipart field carrying the uploaded file.
const UploadFormField = "file"

// CreateAgentInput represents the echo create request body
type CreateAgentInput struct {
	Body models.Agent
}

// UploadInput represents an upload for one agent
type UploadInput struct {
	AgentID string `query:"agent_id" required:"true" doc:"Agent whose collection receives the file"`
	RawBody multipart.Form
}

// SearchInput represents a semantic search query
type SearchInput struct {
	AgentID string `query:"agent_id" required:"true" doc:"Agent whose collection is searched"`
	Query   string `query:"query" required:"true" doc:"Free-text query"`
	TopK    int    `query:"top_k" default:"5" doc:"Maximum number of results"`
}

// FilesInput represents a file listing for one agent
type FilesInput struct {
	AgentID string `query:"agent_id" required:"true" doc:"Agent whose embedded files are listed"`
}

// RegisterAgentsEndpoints registers the search service's agent endpoints
func RegisterAgentsEndpoints(api huma.API, pathPrefix string, svc service.SearchService) {
	tags := []string{"agents"}
	suffix := strings.ReplaceAll(pathPrefix, "/", "-")

	huma.Register(api, huma.Operation{
		OperationID: "list-search-agents" + suffix,
		Method:      http.MethodGet,
		Path:        pathPrefix + "/agents/",
		Middlewares: huma.Middlewares{exactPath(api)},
		Summary:     "List agents",
		Description: "Returns the agents known to the search service",
		Tags:        tags,
	}, func(ctx context.Context, _ *struct{}) (*types.Response[[]models.Agent], error) {
		agents, err := svc.ListAgents(ctx)
		if err != nil {
			return nil, huma.Error500InternalServerError(err.Error())
		}
		out := make([]models.Agent, 0, len(agents))
		for _, agent := range agents {
			out = append(out, agent.Normalized())
		}
		return &types.Response[[]models.Agent]{Body: out}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "create-search-agent" + suffix,
		Method:      http.MethodPost,
		Path:        pathPrefix + "/agents/",
		Middlewares: huma.Middlewares{exactPath(api)},
		Summary:     "Create agent",
		Description: "Echoes the agent back. Nothing is stored.",
		Tags:        tags,
	}, func(ctx context.Context, input *CreateAgentInput) (*types.Response[models.Agent], error) {
		agent, err := svc.CreateAgent(ctx, &input.Body)
		if err != nil {
			return nil, huma.Error500InternalServerError(err.Error())
		}
		return &types.Response[models.Agent]{Body: *agent}, nil
	})
}

// RegisterUploadEndpoint registers the upload-and-embed endpoint
func RegisterUploadEndpoint(api huma.API, pathPrefix string, svc service.SearchService, maxBodyBytes int64) {
	huma.Register(api, huma.Operation{
		OperationID:  "upload-file" + strings.ReplaceAll(pathPrefix, "/", "-"),
		Method:       http.MethodPost,
		Path:         pathPrefix + "/upload/",
		Middlewares:  huma.Middlewares{exactPath(api)},
		Summary:      "Upload and embed a file",
		Description:  "Embeds the whole UTF-8 file as one document in the agent's collection. Re-uploading a file name replaces it.",
		Tags:         []string{"upload"},
		MaxBodyBytes: maxBodyBytes,
	}, func(ctx context.Context, input *UploadInput) (*types.Response[models.UploadResponse], error) {
		files := input.RawBody.File[UploadFormField]
		if len(files) == 0 {
			return nil, huma.Error422UnprocessableEntity("validation failed", &huma.ErrorDetail{
				Message:  "required multipart field is missing",
				Location: "body." + UploadFormField,
			})
		}
		header := files[0]

		content, err := readUpload(header)
		if err != nil {
			return nil, huma.Error500InternalServerError(err.Error())
		}

		resp, err := svc.Upload(ctx, input.AgentID, header.Filename, content)
		if err != nil {
			return nil, huma.Error500InternalServerError(err.Error())
		}
		return &types.Response[models.UploadResponse]{Body: *resp}, nil
	})
}

// RegisterSearchEndpoint registers the semantic search endpoint
func RegisterSearchEndpoint(api huma.API, pathPrefix string, svc service.SearchService) {
	huma.Register(api, huma.Operation{
		OperationID: "semantic-search" + strings.ReplaceAll(pathPrefix, "/", "-"),
		Method:      http.MethodGet,
		Path:        pathPrefix + "/search/",
		Middlewares: huma.Middlewares{exactPath(api)},
		Summary:     "Semantic search",
		Description: "Returns the documents nearest to the query from the agent's collection",
		Tags:        []string{"search"},
	}, func(ctx context.Context, input *SearchInput) (*types.Response[models.SearchResponse], error) {
		resp, err := svc.Search(ctx, input.AgentID, input.Query, input.TopK)
		if err != nil {
			return nil, huma.Error500InternalServerError(err.Error())
		}
		return &types.Response[models.SearchResponse]{Body: *resp}, nil
	})
}

// RegisterFilesEndpoint registers the embedded file listing endpoint
func RegisterFilesEndpoint(api huma.API, pathPrefix string, svc service.SearchService) {
	huma.Register(api, huma.Operation{
		OperationID: "list-agent-files" + strings.ReplaceAll(pathPrefix, "/", "-"),
		Method:      http.MethodGet,
		Path:        pathPrefix + "/files/",
		Middlewares: huma.Middlewares{exactPath(api)},
		Summary:     "List embedded files",
		Description: "Returns the names of the files embedded in the agent's collection, sorted. Unknown agents list empty.",
		Tags:        []string{"upload"},
	}, func(ctx context.Context, input *FilesInput) (*types.Response[models.AgentFilesResponse], error) {
		resp, err := svc.ListFiles(ctx, input.AgentID)
		if err != nil {
			return nil, huma.Error500InternalServerError(err.Error())
		}
		return &types.Response[models.AgentFilesResponse]{Body: *resp}, nil
	})
}

// exactPath answers 404 for requests below a trailing-slash operation path,
// which net/http.ServeMux would otherwise route to it as a subtree.
func exactPath(api huma.API) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		u := ctx.URL()
		if u.Path != ctx.Operation().Path {
			_ = huma.WriteErr(api, ctx, http.StatusNotFound, "Not Found")
			return
		}
		next(ctx)
	}
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return content, nil
}
