package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mattewlondono22/smartagents-desktop/internal/registry"
	"github.com/mattewlondono22/smartagents-desktop/pkg/types"
)

// ServeOptions lets embedders hook into the servers started by serve.
var ServeOptions *types.AppOptions

var ServeCmd = &cobra.Command{
	Use:       "serve [registry|search]",
	Short:     "Run the registry and search services",
	Long:      `Runs both services in one process, or only the one named. Configuration is read from AGENT_STUDIO_* environment variables.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{registry.ModeRegistry, registry.ModeSearch},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := registry.ModeAll
		if len(args) == 1 {
			mode = args[0]
		}

		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
		defer stop()

		return registry.App(ctx, mode, ServeOptions)
	},
}
