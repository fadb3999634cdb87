// Package api wires huma APIs into HTTP servers with the shared middleware stack.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/mattewlondono22/smartagents-desktop/internal/registry/logging"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/telemetry"
	"github.com/mattewlondono22/smartagents-desktop/internal/version"
)

// ServerOptions configures one HTTP server.
type ServerOptions struct {
	Name           string
	Title          string
	Address        string
	AllowedOrigins []string
	Metrics        *telemetry.Metrics
}

// Server is a huma API on its own ServeMux and listener.
type Server struct {
	name    string
	api     huma.API
	mux     *http.ServeMux
	handler http.Handler
	server  *http.Server
}

// NewServer builds the API and middleware chain. register adds the routes.
func NewServer(opts ServerOptions, register func(api huma.API)) *Server {
	mux := http.NewServeMux()

	humaConfig := huma.DefaultConfig(opts.Title, version.Version)
	// No $schema links in response bodies.
	humaConfig.CreateHooks = []func(huma.Config) huma.Config{}
	api := humago.New(mux, humaConfig)
	register(api)

	var handler http.Handler = mux
	if opts.Metrics != nil {
		mux.Handle("GET /metrics", opts.Metrics.Handler())
		handler = opts.Metrics.Middleware(handler)
	}
	handler = logging.HTTPMiddleware(logging.APIEventLog.With(zap.String("service", opts.Name)))(handler)
	handler = newCORS(opts.AllowedOrigins).Handler(handler)

	return &Server{
		name:    opts.Name,
		api:     api,
		mux:     mux,
		handler: handler,
		server: &http.Server{
			Addr:              opts.Address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func newCORS(origins []string) *cors.Cors {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{logging.RequestIDHeader},
		AllowCredentials: !slices.Contains(origins, "*"),
	})
}

// Name returns the service name.
func (s *Server) Name() string {
	return s.name
}

// HumaAPI returns the Huma API instance.
func (s *Server) HumaAPI() huma.API {
	return s.api
}

// Mux returns the ServeMux for non-huma handlers such as /mcp.
func (s *Server) Mux() *http.ServeMux {
	return s.mux
}

// Handler returns the full middleware chain.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start listens on the configured address and blocks until Shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("%s server failed to listen on %s: %w", s.name, s.server.Addr, err)
	}
	logging.Log(context.Background(), logging.SystemLog, zap.InfoLevel, "Server listening",
		zap.String("service", s.name),
		zap.String("address", ln.Addr().String()),
	)
	if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server failed: %w", s.name, err)
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
