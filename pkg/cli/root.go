// Package cli assembles the studio command tree.
package cli

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	clicmd "github.com/mattewlondono22/smartagents-desktop/internal/cli"
	"github.com/mattewlondono22/smartagents-desktop/internal/cli/agent"
	"github.com/mattewlondono22/smartagents-desktop/internal/cli/onboarding"
	"github.com/mattewlondono22/smartagents-desktop/internal/cli/tool"
)

// EnvFile is loaded before any command runs. Variables already set in the
// environment take precedence.
var EnvFile = ".env"

// Root returns the studio root command.
func Root() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "studio",
		Short:         "Agent Studio registry and search services",
		Long:          `studio runs the Agent Studio registry and search services and manages agents, tools and documents through them.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnvFile(EnvFile)
		},
	}

	rootCmd.AddCommand(
		clicmd.ServeCmd,
		agent.AgentCmd,
		tool.ToolCmd,
		clicmd.EmbedCmd,
		clicmd.UploadCmd,
		clicmd.SearchCmd,
		clicmd.FilesCmd,
		onboarding.OnboardingCmd,
		clicmd.StatusCmd,
		clicmd.VersionCmd,
	)
	return rootCmd
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
