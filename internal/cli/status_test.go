package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runStatusCmd(t *testing.T, format string) string {
	t.Helper()
	statusOutputFormat = format
	t.Cleanup(func() { statusOutputFormat = "table" })

	var buf bytes.Buffer
	StatusCmd.SetOut(&buf)
	t.Cleanup(func() { StatusCmd.SetOut(nil) })

	require.NoError(t, StatusCmd.RunE(StatusCmd, nil))
	return buf.String()
}

func TestStatusCmd_ServicesStopped(t *testing.T) {
	// Point to non-existent servers so Ping fails.
	t.Setenv("STUDIO_API_BASE_URL", "http://127.0.0.1:19999")
	t.Setenv("STUDIO_SEARCH_BASE_URL", "http://127.0.0.1:19998")

	out := runStatusCmd(t, "table")
	assert.Contains(t, out, "Registry:        unreachable")
	assert.Contains(t, out, "Search:          unreachable")
	assert.NotContains(t, out, "Agents:")
}

func TestStatusCmd_RegistryRunning(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pong":true}`))
	})
	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"version":    "v0.5.0",
			"git_commit": "abc1234",
			"build_time": "2026-10-01T00:00:00Z",
		})
	})
	mux.HandleFunc("/agents", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": "a", "name": "A", "description": "", "capabilities": []string{}},
			{"id": "b", "name": "B", "description": "", "capabilities": []string{}},
		})
	})
	mux.HandleFunc("/tools", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	t.Setenv("STUDIO_API_BASE_URL", srv.URL)
	t.Setenv("STUDIO_SEARCH_BASE_URL", "http://127.0.0.1:19998")

	out := runStatusCmd(t, "json")

	var info statusInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "ok", info.Registry)
	assert.Equal(t, "unreachable", info.Search)
	assert.Equal(t, "v0.5.0", info.Version)
	assert.Equal(t, 2, info.Agents)
	assert.Equal(t, 0, info.Tools)
}

func TestStatusCmd_InvalidFormat(t *testing.T) {
	statusOutputFormat = "yaml"
	t.Cleanup(func() { statusOutputFormat = "table" })
	assert.Error(t, StatusCmd.RunE(StatusCmd, nil))
}
