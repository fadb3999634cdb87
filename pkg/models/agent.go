package models

// Agent is a named configuration record describing an assistant's declared capabilities.
type Agent struct {
	ID           string   `json:"id" doc:"Unique agent identifier" example:"data_analyst"`
	Name         string   `json:"name" doc:"Display name" example:"Data Analyst"`
	Description  string   `json:"description" required:"false" doc:"Free-form description" example:"Performs advanced data analysis"`
	Capabilities []string `json:"capabilities" required:"false" doc:"Ordered list of declared capabilities" example:"[\"data_processing\",\"visualization\"]"`
}

// Normalized returns a copy with a non-nil capability list so it always serializes as an array.
func (a Agent) Normalized() Agent {
	if a.Capabilities == nil {
		a.Capabilities = []string{}
	}
	return a
}

// AgentDeletedResponse is returned after an agent is removed from the registry.
type AgentDeletedResponse struct {
	Status string `json:"status" example:"Agent deleted successfully"`
}
