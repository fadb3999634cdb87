package v0

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mattewlondono22/smartagents-desktop/pkg/types"
)

// VersionBody represents the version information
type VersionBody struct {
	Version   string `json:"version" example:"1.0.0" doc:"Version of the server"`
	GitCommit string `json:"git_commit" example:"abc123" doc:"Git commit hash"`
	BuildTime string `json:"build_time" example:"2024-01-01T00:00:00Z" doc:"Build timestamp"`
}

// RegisterVersionEndpoint registers the version endpoint
func RegisterVersionEndpoint(api huma.API, pathPrefix string, versionInfo *VersionBody) {
	huma.Register(api, huma.Operation{
		OperationID: "get-version" + strings.ReplaceAll(pathPrefix, "/", "-"),
		Method:      http.MethodGet,
		Path:        pathPrefix + "/version",
		Summary:     "Get version information",
		Description: "Returns version, git commit, and build time information",
		Tags:        []string{"version"},
	}, func(_ context.Context, _ *struct{}) (*types.Response[VersionBody], error) {
		return &types.Response[VersionBody]{
			Body: *versionInfo,
		}, nil
	})
}
