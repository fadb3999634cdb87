package types

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Response is a generic wrapper for Huma responses
// Usage: Response[HealthBody] instead of HealthOutput
type Response[T any] struct {
	Body T
}

// Server represents an HTTP server and provides access to the Huma API
// and HTTP mux for registering new routes and handlers.
type Server interface {
	// HumaAPI returns the Huma API instance, allowing registration of new routes
	// that will appear in the OpenAPI documentation.
	HumaAPI() huma.API

	// Mux returns the HTTP ServeMux, allowing registration of custom HTTP handlers
	Mux() *http.ServeMux

	// Start begins listening for incoming HTTP requests. It blocks until the server stops.
	Start() error

	// Shutdown gracefully shuts down the server
	Shutdown(ctx context.Context) error
}

// AppOptions contains optional hooks for the studio app.
type AppOptions struct {
	// ExtraRoutes registers additional routes on the registry API
	// using the same API instance and path prefix as the core routes.
	ExtraRoutes func(api huma.API, pathPrefix string)

	// OnHTTPServerCreated receives each server after its routes are registered.
	OnHTTPServerCreated func(name string, server Server)
}
