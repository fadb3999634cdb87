// Package common holds the client wiring and helpers shared by CLI commands.
package common

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"github.com/stoewer/go-strcase"

	"github.com/mattewlondono22/smartagents-desktop/internal/client"
)

// Output formats accepted by --output.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

var (
	mu             sync.Mutex
	registryClient *client.Client
	searchClient   *client.Client
)

// SetRegistryClient overrides the registry client, mainly for tests.
func SetRegistryClient(c *client.Client) {
	mu.Lock()
	defer mu.Unlock()
	registryClient = c
}

// SetSearchClient overrides the search client, mainly for tests.
func SetSearchClient(c *client.Client) {
	mu.Lock()
	defer mu.Unlock()
	searchClient = c
}

// RegistryClient returns the registry client, connecting from the environment on first use.
func RegistryClient() (*client.Client, error) {
	mu.Lock()
	defer mu.Unlock()
	if registryClient == nil {
		c, err := client.NewClientFromEnv()
		if err != nil {
			return nil, err
		}
		registryClient = c
	}
	return registryClient, nil
}

// SearchClient returns the search client, connecting from the environment on first use.
func SearchClient() (*client.Client, error) {
	mu.Lock()
	defer mu.Unlock()
	if searchClient == nil {
		c, err := client.NewSearchClientFromEnv()
		if err != nil {
			return nil, err
		}
		searchClient = c
	}
	return searchClient, nil
}

// DefaultAgentID derives an id from a display name, e.g. "Data Analyst" becomes "data_analyst".
func DefaultAgentID(name string) string {
	return strcase.SnakeCase(strings.TrimSpace(name))
}

// ValidateOutputFormat rejects anything but table or json.
func ValidateOutputFormat(format string) error {
	switch format {
	case OutputTable, OutputJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (expected %s or %s)", format, OutputTable, OutputJSON)
	}
}

// Context returns the command's context, or a background context when the
// command runs outside Execute.
func Context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
