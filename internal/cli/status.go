package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattewlondono22/smartagents-desktop/internal/cli/common"
	"github.com/mattewlondono22/smartagents-desktop/internal/client"
	"github.com/mattewlondono22/smartagents-desktop/internal/version"
	"github.com/mattewlondono22/smartagents-desktop/pkg/printer"
)

var statusOutputFormat string

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the status of the registry and search services",
	Long:  `Displays whether the registry and search services are reachable, the server version, and resource counts.`,
	RunE:  runStatus,
}

func init() {
	StatusCmd.Flags().StringVarP(&statusOutputFormat, "output", "o", common.OutputTable, "Output format (table, json)")
}

type statusInfo struct {
	Registry  string `json:"registry"`
	Search    string `json:"search"`
	Version   string `json:"version,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	Agents    int    `json:"agents"`
	Tools     int    `json:"tools"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	if err := common.ValidateOutputFormat(statusOutputFormat); err != nil {
		return err
	}
	ctx := common.Context(cmd)

	info := statusInfo{
		Registry: "unreachable",
		Search:   "unreachable",
		Agents:   -1,
		Tools:    -1,
	}

	// Plain clients: status reports reachability, so no retries.
	registry := client.NewClient(client.RegistryBaseURL())
	if err := registry.Ping(ctx); err == nil {
		info.Registry = "ok"

		if ver, err := registry.Version(ctx); err == nil {
			info.Version = ver.Version
			info.GitCommit = ver.GitCommit
			info.BuildTime = ver.BuildTime
		}
		if agents, err := registry.ListAgents(ctx); err == nil {
			info.Agents = len(agents)
		}
		if tools, err := registry.ListTools(ctx); err == nil {
			info.Tools = len(tools)
		}
	}

	search := client.NewClient(client.SearchBaseURL())
	if err := search.Ping(ctx); err == nil {
		info.Search = "ok"
	}

	out := cmd.OutOrStdout()
	if statusOutputFormat == common.OutputJSON {
		return printer.PrintJSON(out, info)
	}

	fmt.Fprintf(out, "studio version:  %s\n", version.Version)
	fmt.Fprintf(out, "Registry:        %s\n", info.Registry)
	fmt.Fprintf(out, "Search:          %s\n", info.Search)
	if info.Version != "" {
		fmt.Fprintf(out, "Server version:  %s\n", info.Version)
		fmt.Fprintf(out, "Git commit:      %s\n", info.GitCommit)
		fmt.Fprintf(out, "Build time:      %s\n", info.BuildTime)
	}
	if info.Agents >= 0 {
		fmt.Fprintf(out, "Agents:          %d\n", info.Agents)
	}
	if info.Tools >= 0 {
		fmt.Fprintf(out, "Tools:           %d\n", info.Tools)
	}

	return nil
}
