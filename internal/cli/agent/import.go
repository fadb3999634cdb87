package agent

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattewlondono22/smartagents-desktop/internal/cli/common"
	"github.com/mattewlondono22/smartagents-desktop/internal/client"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/seed"
)

var ImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import agents from a seed file",
	Long:  `Create every agent listed in a seed file. Agents whose id is already registered are skipped.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		agents, err := seed.LoadAgents(data)
		if err != nil {
			return err
		}

		c, err := common.RegistryClient()
		if err != nil {
			return err
		}

		result := seed.ImportResult{}
		for _, a := range agents {
			_, err := c.CreateAgent(common.Context(cmd), *a)
			var apiErr *client.APIError
			switch {
			case err == nil:
				result.Imported++
			case errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest:
				result.Skipped++
			default:
				result.Failed++
				fmt.Fprintf(cmd.ErrOrStderr(), "failed to import agent %s: %v\n", a.ID, err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d, skipped %d, failed %d\n", result.Imported, result.Skipped, result.Failed)
		if result.Failed > 0 {
			return fmt.Errorf("%d agents failed to import", result.Failed)
		}
		return nil
	},
}
