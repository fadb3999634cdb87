package agent

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattewlondono22/smartagents-desktop/internal/cli/common"
	"github.com/mattewlondono22/smartagents-desktop/pkg/printer"
)

var listOutputFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered agents",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	ListCmd.Flags().StringVarP(&listOutputFormat, "output", "o", common.OutputTable, "Output format (table, json)")
}

func runList(cmd *cobra.Command, args []string) error {
	if err := common.ValidateOutputFormat(listOutputFormat); err != nil {
		return err
	}
	c, err := common.RegistryClient()
	if err != nil {
		return err
	}

	agents, err := c.ListAgents(common.Context(cmd))
	if err != nil {
		return fmt.Errorf("failed to list agents: %w", err)
	}

	if listOutputFormat == common.OutputJSON {
		return printer.PrintJSON(cmd.OutOrStdout(), agents)
	}
	if len(agents) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No agents registered.")
		return nil
	}
	return printAgentTable(cmd, agents)
}
