package agent

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattewlondono22/smartagents-desktop/internal/cli/common"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/seed"
	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
)

var exportFile string

var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all agents as a seed file",
	Long: `Export every registered agent in the seed file format understood by "studio agent import".
Writes to stdout unless --file is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.RegistryClient()
		if err != nil {
			return err
		}
		agents, err := c.ListAgents(common.Context(cmd))
		if err != nil {
			return fmt.Errorf("failed to list agents: %w", err)
		}

		ptrs := make([]*models.Agent, 0, len(agents))
		for i := range agents {
			ptrs = append(ptrs, &agents[i])
		}
		data, err := seed.MarshalAgents(ptrs)
		if err != nil {
			return err
		}

		if exportFile == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(exportFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportFile, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d agents to %s\n", len(agents), exportFile)
		return nil
	},
}

func init() {
	ExportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "Write the seed file here instead of stdout")
}
