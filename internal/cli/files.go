package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattewlondono22/smartagents-desktop/internal/cli/common"
	"github.com/mattewlondono22/smartagents-desktop/pkg/printer"
)

var (
	filesAgentID      string
	filesOutputFormat string
)

var FilesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the files uploaded for an agent",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := common.ValidateOutputFormat(filesOutputFormat); err != nil {
			return err
		}

		c, err := common.SearchClient()
		if err != nil {
			return err
		}
		resp, err := c.ListFiles(common.Context(cmd), filesAgentID)
		if err != nil {
			return fmt.Errorf("failed to list files: %w", err)
		}

		out := cmd.OutOrStdout()
		if filesOutputFormat == common.OutputJSON {
			return printer.PrintJSON(out, resp)
		}
		if len(resp.Files) == 0 {
			fmt.Fprintf(out, "No files uploaded for agent %s.\n", resp.AgentID)
			return nil
		}
		rows := make([][]string, 0, len(resp.Files))
		for _, name := range resp.Files {
			rows = append(rows, []string{name})
		}
		return printer.PrintTable(out, []string{"File"}, rows)
	},
}

func init() {
	FilesCmd.Flags().StringVar(&filesAgentID, "agent", "", "Agent whose files are listed")
	FilesCmd.Flags().StringVarP(&filesOutputFormat, "output", "o", common.OutputTable, "Output format (table, json)")
	_ = FilesCmd.MarkFlagRequired("agent")
}
