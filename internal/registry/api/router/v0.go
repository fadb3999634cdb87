// Package router contains API routing logic
package router

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/mattewlondono22/smartagents-desktop/internal/registry/api/handlers/search"
	v0 "github.com/mattewlondono22/smartagents-desktop/internal/registry/api/handlers/v0"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/service"
)

// Service names reported by the health endpoint.
const (
	RegistryServiceName = "registry"
	SearchServiceName   = "search"
)

// RouteOptions contains optional route registration hooks.
type RouteOptions struct {
	// ExtraRoutes is called after the core routes with the same API and path prefix.
	ExtraRoutes func(api huma.API, pathPrefix string)
}

// RegisterRegistryRoutes registers the agent registry routes at the root path.
func RegisterRegistryRoutes(
	api huma.API,
	registry service.RegistryService,
	versionInfo *v0.VersionBody,
	opts *RouteOptions,
) {
	pathPrefix := ""

	v0.RegisterHealthEndpoint(api, pathPrefix, RegistryServiceName)
	v0.RegisterPingEndpoint(api, pathPrefix)
	v0.RegisterVersionEndpoint(api, pathPrefix, versionInfo)
	v0.RegisterAgentsEndpoints(api, pathPrefix, registry)
	v0.RegisterToolsEndpoints(api, pathPrefix, registry)
	v0.RegisterFileEndpoints(api, pathPrefix, registry)
	v0.RegisterOnboardingEndpoints(api, pathPrefix, registry)

	if opts != nil && opts.ExtraRoutes != nil {
		opts.ExtraRoutes(api, pathPrefix)
	}
}

// RegisterSearchRoutes registers the semantic search routes at the root path.
func RegisterSearchRoutes(
	api huma.API,
	svc service.SearchService,
	versionInfo *v0.VersionBody,
	maxUploadBytes int64,
) {
	pathPrefix := ""

	v0.RegisterHealthEndpoint(api, pathPrefix, SearchServiceName)
	v0.RegisterPingEndpoint(api, pathPrefix)
	v0.RegisterVersionEndpoint(api, pathPrefix, versionInfo)
	search.RegisterAgentsEndpoints(api, pathPrefix, svc)
	search.RegisterUploadEndpoint(api, pathPrefix, svc, maxUploadBytes)
	search.RegisterSearchEndpoint(api, pathPrefix, svc)
	search.RegisterFilesEndpoint(api, pathPrefix, svc)
}
