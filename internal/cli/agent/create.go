package agent

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattewlondono22/smartagents-desktop/internal/cli/common"
	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
)

var (
	createID           string
	createName         string
	createDescription  string
	createCapabilities []string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new agent",
	Long: `Register a new agent in the registry.
When --id is omitted it is derived from the name in snake_case.

Examples:
  studio agent create --name "Data Analyst" --capability data_processing --capability visualization
  studio agent create --id helper --name Helper --description "General helper"`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func init() {
	CreateCmd.Flags().StringVar(&createID, "id", "", "Agent id (defaults to the name in snake_case)")
	CreateCmd.Flags().StringVar(&createName, "name", "", "Display name (required)")
	CreateCmd.Flags().StringVar(&createDescription, "description", "", "Free-form description")
	CreateCmd.Flags().StringSliceVar(&createCapabilities, "capability", nil, "Capability, repeatable and kept in order")
	_ = CreateCmd.MarkFlagRequired("name")
}

func runCreate(cmd *cobra.Command, args []string) error {
	id := createID
	if id == "" {
		id = common.DefaultAgentID(createName)
	}

	c, err := common.RegistryClient()
	if err != nil {
		return err
	}

	created, err := c.CreateAgent(common.Context(cmd), models.Agent{
		ID:           id,
		Name:         createName,
		Description:  createDescription,
		Capabilities: createCapabilities,
	})
	if err != nil {
		return fmt.Errorf("failed to create agent: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Agent '%s' created\n", created.ID)
	return nil
}
