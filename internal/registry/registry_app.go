// Package registry assembles and runs the studio registry and search services.
package registry

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/mattewlondono22/smartagents-desktop/internal/mcp/registryserver"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/api"
	v0 "github.com/mattewlondono22/smartagents-desktop/internal/registry/api/handlers/v0"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/api/router"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/config"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/database"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/embeddings"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/logging"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/seed"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/service"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/telemetry"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/vectorstore"
	"github.com/mattewlondono22/smartagents-desktop/internal/version"
	"github.com/mattewlondono22/smartagents-desktop/pkg/types"
)

// Which services App runs.
const (
	ModeAll      = "all"
	ModeRegistry = "registry"
	ModeSearch   = "search"
)

// MCPPath is where the registry serves the MCP streamable HTTP bridge.
const MCPPath = "/mcp"

// App loads configuration from the environment and runs the services selected by mode
// until ctx is canceled, then drains them within the configured shutdown timeout.
func App(ctx context.Context, mode string, opts *types.AppOptions) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	logging.Configure(&cfg.Logging)

	app, err := newApp(ctx, cfg, mode, opts)
	if err != nil {
		return err
	}
	return app.run(ctx)
}

type app struct {
	cfg      *config.Config
	servers  []*api.Server
	store    vectorstore.Store
	metrics  []*telemetry.Metrics
	registry service.RegistryService
	search   service.SearchService
}

func newApp(ctx context.Context, cfg *config.Config, mode string, opts *types.AppOptions) (a *app, err error) {
	runRegistry := mode == ModeAll || mode == ModeRegistry
	runSearch := mode == ModeAll || mode == ModeSearch
	if !runRegistry && !runSearch {
		return nil, fmt.Errorf("unknown service %q (expected %s, %s or %s)", mode, ModeAll, ModeRegistry, ModeSearch)
	}
	if opts == nil {
		opts = &types.AppOptions{}
	}

	a = &app{cfg: cfg}
	defer func() {
		if err != nil {
			a.close(context.Background())
		}
	}()

	versionInfo := &v0.VersionBody{
		Version:   version.Version,
		GitCommit: version.GitCommit,
		BuildTime: version.BuildDate,
	}

	if runSearch {
		if err := a.buildSearch(ctx, versionInfo); err != nil {
			return nil, err
		}
	}
	if runRegistry {
		if err := a.buildRegistry(ctx, versionInfo, opts); err != nil {
			return nil, err
		}
	}

	for _, srv := range a.servers {
		if opts.OnHTTPServerCreated != nil {
			opts.OnHTTPServerCreated(srv.Name(), srv)
		}
	}
	return a, nil
}

func (a *app) buildRegistry(ctx context.Context, versionInfo *v0.VersionBody, opts *types.AppOptions) error {
	registry, err := service.NewRegistryService(database.NewMemory())
	if err != nil {
		return err
	}
	a.registry = registry

	if a.cfg.SeedBuiltin {
		result, err := seed.ImportBuiltinSeedData(ctx, registry)
		if err != nil {
			return fmt.Errorf("failed to import builtin agents: %w", err)
		}
		logging.Log(ctx, logging.SystemLog, zapcore.InfoLevel, "Builtin agents imported",
			zap.Int("imported", result.Imported),
			zap.Int("skipped", result.Skipped),
			zap.Int("failed", result.Failed),
		)
	}

	metrics, err := telemetry.New(router.RegistryServiceName, version.Version)
	if err != nil {
		return err
	}
	a.metrics = append(a.metrics, metrics)

	srv := api.NewServer(api.ServerOptions{
		Name:           router.RegistryServiceName,
		Title:          "Agent Studio Registry",
		Address:        a.cfg.RegistryAddress,
		AllowedOrigins: a.cfg.CORSAllowedOrigins,
		Metrics:        metrics,
	}, func(humaAPI huma.API) {
		router.RegisterRegistryRoutes(humaAPI, registry, versionInfo, &router.RouteOptions{
			ExtraRoutes: opts.ExtraRoutes,
		})
	})

	if a.cfg.MCPEnabled {
		mcpServer := registryserver.NewServer(registry, a.search)
		srv.Mux().Handle(MCPPath, mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return mcpServer
		}, nil))
	}

	a.servers = append(a.servers, srv)
	return nil
}

func (a *app) buildSearch(ctx context.Context, versionInfo *v0.VersionBody) error {
	maxUpload, err := a.cfg.MaxUploadBytes()
	if err != nil {
		return err
	}

	provider, err := embeddings.NewProvider(a.cfg.Embeddings)
	if err != nil {
		return err
	}

	store, err := vectorstore.New(ctx, a.cfg.VectorStore)
	if err != nil {
		return err
	}
	a.store = store

	metrics, err := telemetry.New(router.SearchServiceName, version.Version)
	if err != nil {
		return err
	}
	a.metrics = append(a.metrics, metrics)

	search := service.NewSearchService(provider, store, metrics)
	a.search = search

	srv := api.NewServer(api.ServerOptions{
		Name:           router.SearchServiceName,
		Title:          "Agent Studio Search",
		Address:        a.cfg.SearchAddress,
		AllowedOrigins: a.cfg.CORSAllowedOrigins,
		Metrics:        metrics,
	}, func(humaAPI huma.API) {
		router.RegisterSearchRoutes(humaAPI, search, versionInfo, maxUpload)
	})
	a.servers = append(a.servers, srv)

	logging.Log(ctx, logging.SystemLog, zapcore.InfoLevel, "Search service configured",
		zap.String("embeddings_provider", a.cfg.Embeddings.Provider),
		zap.String("embeddings_model", a.cfg.Embeddings.Model),
		zap.String("vector_store", a.cfg.VectorStore.Backend),
	)
	return nil
}

func (a *app) run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, srv := range a.servers {
		g.Go(srv.Start)
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()

		logging.Log(shutdownCtx, logging.SystemLog, zapcore.InfoLevel, "Shutting down")
		return a.close(shutdownCtx)
	})

	return g.Wait()
}

func (a *app) close(ctx context.Context) error {
	var errs []error
	for _, srv := range a.servers {
		if err := srv.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s shutdown: %w", srv.Name(), err))
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, m := range a.metrics {
		if err := m.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
