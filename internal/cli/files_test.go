package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattewlondono22/smartagents-desktop/internal/cli/common"
	"github.com/mattewlondono22/smartagents-desktop/internal/client"
	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
)

func useServer(t *testing.T, mux *http.ServeMux) *client.Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return client.NewClient(srv.URL)
}

func TestEmbedCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	var gotPath, gotAgent string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /file/embed", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Query().Get("file_path")
		gotAgent = r.URL.Query().Get("agent_id")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.FileEmbedResponse{
			FilePath: gotPath, AgentID: gotAgent, Status: "File queued for embedding",
		})
	})
	common.SetRegistryClient(useServer(t, mux))
	t.Cleanup(func() { common.SetRegistryClient(nil) })

	embedAgentID = "data_analyst"
	var buf bytes.Buffer
	EmbedCmd.SetOut(&buf)
	t.Cleanup(func() { EmbedCmd.SetOut(nil) })

	require.NoError(t, EmbedCmd.RunE(EmbedCmd, []string{path}))
	assert.Equal(t, path, gotPath)
	assert.Equal(t, "data_analyst", gotAgent)
	assert.Contains(t, buf.String(), "File queued for embedding")
}

func TestUploadCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(path, []byte("quarterly revenue grew"), 0o600))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /upload/", func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "quarterly revenue grew", string(content))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.UploadResponse{
			FileName: header.Filename, AgentID: r.URL.Query().Get("agent_id"), Status: "Embedded successfully",
		})
	})
	common.SetSearchClient(useServer(t, mux))
	t.Cleanup(func() { common.SetSearchClient(nil) })

	uploadAgentID = "data_analyst"
	var buf bytes.Buffer
	UploadCmd.SetOut(&buf)
	t.Cleanup(func() { UploadCmd.SetOut(nil) })

	require.NoError(t, UploadCmd.RunE(UploadCmd, []string{path}))
	assert.Equal(t, "Embedded successfully: report.txt (agent data_analyst)\n", buf.String())
}

func TestUploadCmd_MissingFile(t *testing.T) {
	err := UploadCmd.RunE(UploadCmd, []string{filepath.Join(t.TempDir(), "missing.txt")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
}

func TestSearchCmd(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /search/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "revenue growth", r.URL.Query().Get("query"))
		assert.Equal(t, "2", r.URL.Query().Get("top_k"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SearchResponse{
			Query: "revenue growth",
			Results: []models.SearchResult{{
				Document: strings.Repeat("revenue ", 20),
				Metadata: map[string]string{"agent_id": "data_analyst", "file_name": "report.txt"},
			}},
		})
	})
	common.SetSearchClient(useServer(t, mux))
	t.Cleanup(func() { common.SetSearchClient(nil) })

	searchAgentID = "data_analyst"
	searchTopK = 2
	t.Cleanup(func() { searchTopK = 5 })

	var buf bytes.Buffer
	SearchCmd.SetOut(&buf)
	t.Cleanup(func() { SearchCmd.SetOut(nil) })

	require.NoError(t, SearchCmd.RunE(SearchCmd, []string{"revenue", "growth"}))
	out := buf.String()
	assert.Contains(t, out, "report.txt")
	assert.Contains(t, out, "...")
}

func TestSearchRows(t *testing.T) {
	rows := searchRows([]models.SearchResult{
		{Document: "short\n\ttext", Metadata: map[string]string{"file_name": "a.txt"}},
		{Document: "no metadata", Metadata: map[string]string{}},
	})
	assert.Equal(t, [][]string{
		{"1", "a.txt", "short text"},
		{"2", "", "no metadata"},
	}, rows)
}

func TestFilesCmd(t *testing.T) {
	files := []string{"a.txt", "report.txt"}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /files/", func(w http.ResponseWriter, r *http.Request) {
		agentID := r.URL.Query().Get("agent_id")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AgentFilesResponse{AgentID: agentID, Files: files})
	})
	common.SetSearchClient(useServer(t, mux))
	t.Cleanup(func() { common.SetSearchClient(nil) })

	filesAgentID = "data_analyst"
	var buf bytes.Buffer
	FilesCmd.SetOut(&buf)
	t.Cleanup(func() { FilesCmd.SetOut(nil) })

	require.NoError(t, FilesCmd.RunE(FilesCmd, nil))
	assert.Contains(t, buf.String(), "a.txt")
	assert.Contains(t, buf.String(), "report.txt")

	files = []string{}
	buf.Reset()
	require.NoError(t, FilesCmd.RunE(FilesCmd, nil))
	assert.Equal(t, "No files uploaded for agent data_analyst.\n", buf.String())
}
