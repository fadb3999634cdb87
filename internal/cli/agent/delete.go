package agent

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattewlondono22/smartagents-desktop/internal/cli/common"
	"github.com/mattewlondono22/smartagents-desktop/internal/client"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <agent-id>",
	Short: "Delete an agent from the registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		agentID := args[0]

		c, err := common.RegistryClient()
		if err != nil {
			return err
		}

		if _, err := c.DeleteAgent(common.Context(cmd), agentID); err != nil {
			if client.IsNotFound(err) {
				return fmt.Errorf("agent %s not found", agentID)
			}
			return fmt.Errorf("failed to delete agent: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Agent '%s' deleted successfully\n", agentID)
		return nil
	},
}
