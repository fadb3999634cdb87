// Package agent implements the "studio agent" command group.
package agent

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
	"github.com/mattewlondono22/smartagents-desktop/pkg/printer"
)

var AgentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Manage agents in the registry",
	Long:  "Manage agents in the registry",
}

func init() {
	AgentCmd.AddCommand(ListCmd, ShowCmd, CreateCmd, DeleteCmd, ExportCmd, ImportCmd)
}

func printAgentTable(cmd *cobra.Command, agents []models.Agent) error {
	rows := make([][]string, 0, len(agents))
	for _, a := range agents {
		rows = append(rows, []string{a.ID, a.Name, a.Description, strings.Join(a.Capabilities, ", ")})
	}
	return printer.PrintTable(cmd.OutOrStdout(), []string{"ID", "Name", "Description", "Capabilities"}, rows)
}
