package agent

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattewlondono22/smartagents-desktop/internal/cli/common"
	"github.com/mattewlondono22/smartagents-desktop/internal/client"
	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
	"github.com/mattewlondono22/smartagents-desktop/pkg/printer"
)

var showOutputFormat string

var ShowCmd = &cobra.Command{
	Use:   "show <agent-id>",
	Short: "Show a single agent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := common.ValidateOutputFormat(showOutputFormat); err != nil {
			return err
		}
		c, err := common.RegistryClient()
		if err != nil {
			return err
		}

		a, err := c.GetAgent(common.Context(cmd), args[0])
		if client.IsNotFound(err) {
			return fmt.Errorf("agent %s not found", args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to get agent: %w", err)
		}

		if showOutputFormat == common.OutputJSON {
			return printer.PrintJSON(cmd.OutOrStdout(), a)
		}
		return printAgentTable(cmd, []models.Agent{*a})
	},
}

func init() {
	ShowCmd.Flags().StringVarP(&showOutputFormat, "output", "o", common.OutputTable, "Output format (table, json)")
}
