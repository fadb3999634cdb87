package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v0 "github.com/mattewlondono22/smartagents-desktop/internal/registry/api/handlers/v0"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/logging"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/telemetry"
)

func newTestServer(t *testing.T, origins []string) *Server {
	t.Helper()
	metrics, err := telemetry.New("test", "dev")
	require.NoError(t, err)
	t.Cleanup(func() { _ = metrics.Shutdown(context.Background()) })

	return NewServer(ServerOptions{
		Name:           "test",
		Title:          "Test API",
		Address:        "127.0.0.1:0",
		AllowedOrigins: origins,
		Metrics:        metrics,
	}, func(api huma.API) {
		v0.RegisterPingEndpoint(api, "")
	})
}

func TestServer_ServesRoutesWithoutSchemaLink(t *testing.T) {
	srv := newTestServer(t, nil)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"pong":true}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(logging.RequestIDHeader))
}

func TestServer_Metrics(t *testing.T) {
	srv := newTestServer(t, nil)

	srv.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_route="GET /ping"`)
}

func TestServer_CORS(t *testing.T) {
	srv := newTestServer(t, []string{"http://localhost:1420"})

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:1420")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:1420", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_StartAndShutdown(t *testing.T) {
	srv := newTestServer(t, nil)

	done := make(chan error, 1)
	go func() { done <- srv.Start() }()

	require.NoError(t, srv.Shutdown(context.Background()))
	assert.NoError(t, <-done)
}
