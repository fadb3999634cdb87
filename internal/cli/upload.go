package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mattewlondono22/smartagents-desktop/internal/cli/common"
)

var uploadAgentID string

var UploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a text file to an agent's search collection",
	Long:  `Uploads a UTF-8 text file to the search service, which embeds it into the agent's collection. Uploading the same file name again replaces the stored document.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()

		c, err := common.SearchClient()
		if err != nil {
			return err
		}
		resp, err := c.Upload(common.Context(cmd), uploadAgentID, filepath.Base(args[0]), f)
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", args[0], err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (agent %s)\n", resp.Status, resp.FileName, resp.AgentID)
		return nil
	},
}

func init() {
	UploadCmd.Flags().StringVar(&uploadAgentID, "agent", "", "Agent whose collection receives the file")
	_ = UploadCmd.MarkFlagRequired("agent")
}
