package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattewlondono22/smartagents-desktop/internal/version"
)

func TestUpdateRecommendation(t *testing.T) {
	assert.Contains(t, updateRecommendation("1.2.0", "v1.1.0"), "Consider updating the server")
	assert.Contains(t, updateRecommendation("v1.0.0", "1.1.0"), "Consider updating the CLI")
	assert.Empty(t, updateRecommendation("1.0.0", "1.0.0"))
	assert.Empty(t, updateRecommendation("dev", "1.0.0"))
}

func TestVersionCmd_JSON(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"version":    "v0.3.0",
			"git_commit": "abc1234",
			"build_time": "2026-10-01T00:00:00Z",
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	t.Setenv("STUDIO_API_BASE_URL", srv.URL)

	jsonOutput = true
	t.Cleanup(func() { jsonOutput = false })

	var buf bytes.Buffer
	VersionCmd.SetOut(&buf)
	t.Cleanup(func() { VersionCmd.SetOut(nil) })
	require.NoError(t, VersionCmd.RunE(VersionCmd, nil))

	var out VersionOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, version.Version, out.StudioVersion)
	assert.Equal(t, "v0.3.0", out.ServerVersion)
	assert.Equal(t, "abc1234", out.ServerGitCommit)
}
