package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mattewlondono22/smartagents-desktop/internal/cli/common"
)

var embedAgentID string

var EmbedCmd = &cobra.Command{
	Use:   "embed <path>",
	Short: "Queue a file on the registry host for embedding",
	Long:  `Asks the registry to queue a file for embedding. The path is made absolute and must exist on the registry host.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", args[0], err)
		}

		c, err := common.RegistryClient()
		if err != nil {
			return err
		}
		resp, err := c.EmbedFile(common.Context(cmd), path, embedAgentID)
		if err != nil {
			return fmt.Errorf("failed to embed %s: %w", path, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (agent %s)\n", resp.Status, resp.FilePath, resp.AgentID)
		return nil
	},
}

func init() {
	EmbedCmd.Flags().StringVar(&embedAgentID, "agent", "", "Agent the file belongs to")
	_ = EmbedCmd.MarkFlagRequired("agent")
}
