package models

// Tool is an entry in the tool registry.
type Tool struct {
	ID          string `json:"id" doc:"Unique tool identifier" example:"web_search"`
	Name        string `json:"name" doc:"Display name" example:"Web Search"`
	Description string `json:"description" doc:"What the tool does"`
	Enabled     bool   `json:"enabled" required:"false" doc:"Whether the tool is enabled" default:"false"`
}
