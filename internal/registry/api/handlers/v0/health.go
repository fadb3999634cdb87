package v0

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mattewlondono22/smartagents-desktop/pkg/types"
)

// HealthBody represents the health check response body
type HealthBody struct {
	Status  string `json:"status" example:"ok" doc:"Health status"`
	Service string `json:"service" example:"registry" doc:"Name of the answering service"`
}

// RegisterHealthEndpoint registers the health check endpoint for the named service
func RegisterHealthEndpoint(api huma.API, pathPrefix, serviceName string) {
	huma.Register(api, huma.Operation{
		OperationID: "get-health" + strings.ReplaceAll(pathPrefix, "/", "-"),
		Method:      http.MethodGet,
		Path:        pathPrefix + "/health",
		Summary:     "Health check",
		Description: "Reports that the service is up",
		Tags:        []string{"health"},
	}, func(_ context.Context, _ *struct{}) (*types.Response[HealthBody], error) {
		return &types.Response[HealthBody]{
			Body: HealthBody{
				Status:  "ok",
				Service: serviceName,
			},
		}, nil
	})
}
