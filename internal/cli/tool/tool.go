// Package tool implements the "studio tool" command group.
package tool

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mattewlondono22/smartagents-desktop/internal/cli/common"
	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
	"github.com/mattewlondono22/smartagents-desktop/pkg/printer"
)

var ToolCmd = &cobra.Command{
	Use:   "tool",
	Short: "Manage tools in the registry",
}

var (
	listOutputFormat    string
	registerID          string
	registerName        string
	registerDescription string
	registerEnabled     bool
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered tools",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := common.ValidateOutputFormat(listOutputFormat); err != nil {
			return err
		}
		c, err := common.RegistryClient()
		if err != nil {
			return err
		}
		tools, err := c.ListTools(common.Context(cmd))
		if err != nil {
			return fmt.Errorf("failed to list tools: %w", err)
		}

		out := cmd.OutOrStdout()
		if listOutputFormat == common.OutputJSON {
			return printer.PrintJSON(out, tools)
		}
		if len(tools) == 0 {
			fmt.Fprintln(out, "No tools registered.")
			return nil
		}
		rows := make([][]string, 0, len(tools))
		for _, t := range tools {
			rows = append(rows, []string{t.ID, t.Name, t.Description, strconv.FormatBool(t.Enabled)})
		}
		return printer.PrintTable(out, []string{"ID", "Name", "Description", "Enabled"}, rows)
	},
}

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new tool",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.RegistryClient()
		if err != nil {
			return err
		}
		tool, err := c.RegisterTool(common.Context(cmd), models.Tool{
			ID:          registerID,
			Name:        registerName,
			Description: registerDescription,
			Enabled:     registerEnabled,
		})
		if err != nil {
			return fmt.Errorf("failed to register tool: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Tool '%s' registered\n", tool.ID)
		return nil
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listOutputFormat, "output", "o", common.OutputTable, "Output format (table, json)")

	RegisterCmd.Flags().StringVar(&registerID, "id", "", "Tool id (required)")
	RegisterCmd.Flags().StringVar(&registerName, "name", "", "Display name (required)")
	RegisterCmd.Flags().StringVar(&registerDescription, "description", "", "What the tool does")
	RegisterCmd.Flags().BoolVar(&registerEnabled, "enabled", false, "Mark the tool as enabled")
	_ = RegisterCmd.MarkFlagRequired("id")
	_ = RegisterCmd.MarkFlagRequired("name")

	ToolCmd.AddCommand(ListCmd, RegisterCmd)
}
