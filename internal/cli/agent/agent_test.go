package agent

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattewlondono22/smartagents-desktop/internal/cli/common"
	"github.com/mattewlondono22/smartagents-desktop/internal/client"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/seed"
	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
)

// fakeRegistry serves the agent endpoints from memory.
type fakeRegistry struct {
	mu     sync.Mutex
	agents []models.Agent
}

func (f *fakeRegistry) handler() http.Handler {
	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
	problem := func(w http.ResponseWriter, status int, detail string) {
		writeJSON(w, status, map[string]any{"title": http.StatusText(status), "status": status, "detail": detail})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /agents", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, f.agents)
	})
	mux.HandleFunc("POST /agents", func(w http.ResponseWriter, r *http.Request) {
		var a models.Agent
		if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
			problem(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		for _, existing := range f.agents {
			if existing.ID == a.ID {
				problem(w, http.StatusBadRequest, "Agent already exists")
				return
			}
		}
		f.agents = append(f.agents, a)
		writeJSON(w, http.StatusOK, a)
	})
	mux.HandleFunc("GET /agents/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		for _, a := range f.agents {
			if a.ID == r.PathValue("id") {
				writeJSON(w, http.StatusOK, a)
				return
			}
		}
		problem(w, http.StatusNotFound, "Agent not found")
	})
	mux.HandleFunc("DELETE /agents/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, a := range f.agents {
			if a.ID == r.PathValue("id") {
				f.agents = append(f.agents[:i], f.agents[i+1:]...)
				writeJSON(w, http.StatusOK, models.AgentDeletedResponse{Status: "Agent deleted successfully"})
				return
			}
		}
		problem(w, http.StatusNotFound, "Agent not found")
	})
	return mux
}

func setupRegistry(t *testing.T, agents ...models.Agent) *fakeRegistry {
	t.Helper()
	f := &fakeRegistry{agents: agents}
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	common.SetRegistryClient(client.NewClient(srv.URL))
	t.Cleanup(func() { common.SetRegistryClient(nil) })
	return f
}

func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	AgentCmd.SetOut(&buf)
	AgentCmd.SetErr(&buf)
	t.Cleanup(func() {
		AgentCmd.SetOut(nil)
		AgentCmd.SetErr(nil)
	})
	return &buf
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	AgentCmd.SetArgs(args)
	t.Cleanup(func() { AgentCmd.SetArgs(nil) })
	return AgentCmd.Execute()
}

func TestCreate_DefaultsIDFromName(t *testing.T) {
	reg := setupRegistry(t)
	out := captureOut(t)
	t.Cleanup(func() {
		createID, createName, createDescription, createCapabilities = "", "", "", nil
	})

	require.NoError(t, execute(t, "create", "--name", "Data Analyst", "--capability", "data_processing", "--capability", "visualization"))

	require.Len(t, reg.agents, 1)
	assert.Equal(t, "data_analyst", reg.agents[0].ID)
	assert.Equal(t, []string{"data_processing", "visualization"}, reg.agents[0].Capabilities)
	assert.Contains(t, out.String(), "Agent 'data_analyst' created")
}

func TestCreate_Duplicate(t *testing.T) {
	setupRegistry(t, models.Agent{ID: "helper", Name: "Helper", Capabilities: []string{}})
	captureOut(t)
	t.Cleanup(func() {
		createID, createName, createDescription, createCapabilities = "", "", "", nil
	})

	err := execute(t, "create", "--id", "helper", "--name", "Helper")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Agent already exists")
}

func TestListAndShow(t *testing.T) {
	setupRegistry(t,
		models.Agent{ID: "code_mentor", Name: "Code Mentor", Capabilities: []string{"code_review"}},
		models.Agent{ID: "writing_assistant", Name: "Writing Assistant", Capabilities: []string{}},
	)
	out := captureOut(t)

	require.NoError(t, execute(t, "list"))
	assert.Contains(t, out.String(), "code_mentor")
	assert.Contains(t, out.String(), "writing_assistant")

	out.Reset()
	require.NoError(t, execute(t, "show", "code_mentor", "-o", "json"))
	t.Cleanup(func() { showOutputFormat = common.OutputTable })
	var a models.Agent
	require.NoError(t, json.Unmarshal(out.Bytes(), &a))
	assert.Equal(t, "Code Mentor", a.Name)

	err := execute(t, "show", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "agent missing not found")
}

func TestDelete(t *testing.T) {
	reg := setupRegistry(t, models.Agent{ID: "helper", Name: "Helper", Capabilities: []string{}})
	out := captureOut(t)

	require.NoError(t, execute(t, "delete", "helper"))
	assert.Empty(t, reg.agents)
	assert.Contains(t, out.String(), "Agent 'helper' deleted successfully")

	err := execute(t, "delete", "helper")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestExportImportRoundTrip(t *testing.T) {
	source := []models.Agent{
		{ID: "research_assistant", Name: "Research Assistant", Description: "Finds sources", Capabilities: []string{"web_search"}},
		{ID: "code_mentor", Name: "Code Mentor", Capabilities: []string{}},
	}
	setupRegistry(t, source...)
	captureOut(t)

	path := filepath.Join(t.TempDir(), "agents.json")
	require.NoError(t, execute(t, "export", "--file", path))
	t.Cleanup(func() { exportFile = "" })

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	loaded, err := seed.LoadAgents(data)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "research_assistant", loaded[0].ID)

	// One agent already present, one new.
	reg := setupRegistry(t, source[1])
	out := captureOut(t)
	require.NoError(t, execute(t, "import", path))
	assert.Contains(t, out.String(), "Imported 1, skipped 1, failed 0")
	assert.Len(t, reg.agents, 2)
}
