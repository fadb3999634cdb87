// Package client is the HTTP client used by the studio CLI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
)

const (
	DefaultBaseURL       = "http://localhost:8000"
	DefaultSearchBaseURL = "http://localhost:8001"

	BaseURLEnv       = "STUDIO_API_BASE_URL"
	SearchBaseURLEnv = "STUDIO_SEARCH_BASE_URL"
)

var (
	pingRetryInterval = 200 * time.Millisecond
	pingMaxTries      = uint(5)
)

// Client talks to one studio service.
type Client struct {
	BaseURL    string
	httpClient *http.Client
}

// VersionInfo is the /version payload.
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
}

// HealthInfo is the /health payload.
type HealthInfo struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// APIError is a non-2xx response decoded from the server's problem document.
type APIError struct {
	StatusCode int
	Title      string `json:"title"`
	Detail     string `json:"detail"`
}

func (e *APIError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = e.Title
	}
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s (HTTP %d)", msg, e.StatusCode)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// NewClient creates a client for baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// NewClientFromEnv creates a registry client from STUDIO_API_BASE_URL and waits for it to answer.
func NewClientFromEnv() (*Client, error) {
	return newClientFromEnv(BaseURLEnv, DefaultBaseURL)
}

// NewSearchClientFromEnv creates a search client from STUDIO_SEARCH_BASE_URL and waits for it to answer.
func NewSearchClientFromEnv() (*Client, error) {
	return newClientFromEnv(SearchBaseURLEnv, DefaultSearchBaseURL)
}

// RegistryBaseURL returns STUDIO_API_BASE_URL or the default registry address.
func RegistryBaseURL() string {
	return envOr(BaseURLEnv, DefaultBaseURL)
}

// SearchBaseURL returns STUDIO_SEARCH_BASE_URL or the default search address.
func SearchBaseURL() string {
	return envOr(SearchBaseURLEnv, DefaultSearchBaseURL)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newClientFromEnv(envKey, fallback string) (*Client, error) {
	c := NewClient(envOr(envKey, fallback))
	if err := pingWithRetry(c); err != nil {
		return nil, fmt.Errorf("studio server at %s is not reachable: %w", c.BaseURL, err)
	}
	return c, nil
}

func pingWithRetry(c *Client) error {
	_, err := backoff.Retry(context.Background(), func() (struct{}, error) {
		return struct{}{}, c.Ping(context.Background())
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(pingRetryInterval)),
		backoff.WithMaxTries(pingMaxTries),
	)
	return err
}

// Ping checks that the server answers /ping.
func (c *Client) Ping(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/ping", nil, nil)
}

func (c *Client) Health(ctx context.Context) (*HealthInfo, error) {
	var out HealthInfo
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Version(ctx context.Context) (*VersionInfo, error) {
	var out VersionInfo
	if err := c.doJSON(ctx, http.MethodGet, "/version", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListAgents(ctx context.Context) ([]models.Agent, error) {
	var out []models.Agent
	if err := c.doJSON(ctx, http.MethodGet, "/agents", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAgent(ctx context.Context, id string) (*models.Agent, error) {
	var out models.Agent
	if err := c.doJSON(ctx, http.MethodGet, "/agents/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateAgent(ctx context.Context, agent models.Agent) (*models.Agent, error) {
	var out models.Agent
	if err := c.doJSON(ctx, http.MethodPost, "/agents", agent.Normalized(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAgent(ctx context.Context, id string) (*models.AgentDeletedResponse, error) {
	var out models.AgentDeletedResponse
	if err := c.doJSON(ctx, http.MethodDelete, "/agents/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListTools(ctx context.Context) ([]models.Tool, error) {
	var out []models.Tool
	if err := c.doJSON(ctx, http.MethodGet, "/tools", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RegisterTool(ctx context.Context, tool models.Tool) (*models.Tool, error) {
	var out models.Tool
	if err := c.doJSON(ctx, http.MethodPost, "/tools", tool, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EmbedFile calls the placeholder embed endpoint; filePath is resolved on the server host.
func (c *Client) EmbedFile(ctx context.Context, filePath, agentID string) (*models.FileEmbedResponse, error) {
	query := url.Values{"file_path": {filePath}, "agent_id": {agentID}}
	var out models.FileEmbedResponse
	if err := c.doJSON(ctx, http.MethodPost, "/file/embed?"+query.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) OnboardingSteps(ctx context.Context) ([]models.OnboardingStep, error) {
	var out []models.OnboardingStep
	if err := c.doJSON(ctx, http.MethodGet, "/onboarding/steps", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Upload sends content as the multipart "file" field to the search service.
func (c *Client) Upload(ctx context.Context, agentID, fileName string, content io.Reader) (*models.UploadResponse, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fileName, err)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	query := url.Values{"agent_id": {agentID}}
	req, err := c.newRequest(ctx, http.MethodPost, "/upload/?"+query.Encode(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out models.UploadResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search queries the search service. topK <= 0 leaves the server default.
func (c *Client) Search(ctx context.Context, agentID, query string, topK int) (*models.SearchResponse, error) {
	params := url.Values{"agent_id": {agentID}, "query": {query}}
	if topK > 0 {
		params.Set("top_k", strconv.Itoa(topK))
	}
	var out models.SearchResponse
	if err := c.doJSON(ctx, http.MethodGet, "/search/?"+params.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListFiles returns the file names embedded for an agent on the search service.
func (c *Client) ListFiles(ctx context.Context, agentID string) (*models.AgentFilesResponse, error) {
	query := url.Values{"agent_id": {agentID}}
	var out models.AgentFilesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/files/?"+query.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(data, apiErr)
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
