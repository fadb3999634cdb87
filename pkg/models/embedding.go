package models

// FileEmbedResponse acknowledges a placeholder file embedding request.
// EmbeddingSize is always zero: the file is accepted but never processed.
type FileEmbedResponse struct {
	FilePath      string `json:"file_path"`
	AgentID       string `json:"agent_id"`
	Status        string `json:"status" example:"File queued for embedding"`
	EmbeddingSize int    `json:"embedding_size" example:"0"`
}

// UploadResponse is returned after an uploaded file has been embedded into an agent's collection.
type UploadResponse struct {
	FileName string `json:"file_name"`
	AgentID  string `json:"agent_id"`
	Status   string `json:"status" example:"Embedded successfully"`
}

// SearchResult is a single semantic search hit.
type SearchResult struct {
	Document string            `json:"document"`
	Metadata map[string]string `json:"metadata"`
}

// SearchResponse carries the query and its hits in store similarity order.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}

// AgentFilesResponse lists the file names embedded into an agent's collection.
type AgentFilesResponse struct {
	AgentID string   `json:"agent_id"`
	Files   []string `json:"files"`
}
