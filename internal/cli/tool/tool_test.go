package tool

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattewlondono22/smartagents-desktop/internal/cli/common"
	"github.com/mattewlondono22/smartagents-desktop/internal/client"
	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
)

func TestRegisterAndList(t *testing.T) {
	var tools []models.Tool
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tools", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tools)
	})
	mux.HandleFunc("POST /tools", func(w http.ResponseWriter, r *http.Request) {
		var tool models.Tool
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&tool))
		tools = append(tools, tool)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tool)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	common.SetRegistryClient(client.NewClient(srv.URL))
	t.Cleanup(func() { common.SetRegistryClient(nil) })

	var buf bytes.Buffer
	ToolCmd.SetOut(&buf)
	t.Cleanup(func() { ToolCmd.SetOut(nil); ToolCmd.SetArgs(nil) })

	ToolCmd.SetArgs([]string{"register", "--id", "web_search", "--name", "Web Search", "--enabled"})
	require.NoError(t, ToolCmd.Execute())
	require.Len(t, tools, 1)
	assert.True(t, tools[0].Enabled)
	assert.Contains(t, buf.String(), "Tool 'web_search' registered")

	buf.Reset()
	ToolCmd.SetArgs([]string{"list", "-o", "json"})
	require.NoError(t, ToolCmd.Execute())
	var listed []models.Tool
	require.NoError(t, json.Unmarshal(buf.Bytes(), &listed))
	assert.Equal(t, tools, listed)
}

func TestListEmpty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tools", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	common.SetRegistryClient(client.NewClient(srv.URL))
	t.Cleanup(func() { common.SetRegistryClient(nil) })

	listOutputFormat = common.OutputTable
	var buf bytes.Buffer
	ListCmd.SetOut(&buf)
	t.Cleanup(func() { ListCmd.SetOut(nil) })

	require.NoError(t, ListCmd.RunE(ListCmd, nil))
	assert.Equal(t, "No tools registered.\n", buf.String())
}
