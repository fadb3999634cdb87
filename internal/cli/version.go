package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/mattewlondono22/smartagents-desktop/internal/cli/common"
	"github.com/mattewlondono22/smartagents-desktop/internal/client"
	"github.com/mattewlondono22/smartagents-desktop/internal/version"
	"github.com/mattewlondono22/smartagents-desktop/pkg/printer"
)

type VersionOutput struct {
	StudioVersion        string `json:"studio_version"`
	GitCommit            string `json:"git_commit"`
	BuildDate            string `json:"build_date"`
	ServerVersion        string `json:"server_version,omitempty"`
	ServerGitCommit      string `json:"server_git_commit,omitempty"`
	ServerBuildDate      string `json:"server_build_date,omitempty"`
	UpdateRecommendation string `json:"update_recommendation,omitempty"`
}

var jsonOutput bool

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Displays the version of studio and of the registry server it talks to.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output := VersionOutput{
			StudioVersion: version.Version,
			GitCommit:     version.GitCommit,
			BuildDate:     version.BuildDate,
		}

		c := client.NewClient(client.RegistryBaseURL())
		serverVersion, err := c.Version(common.Context(cmd))
		if err == nil {
			output.ServerVersion = serverVersion.Version
			output.ServerGitCommit = serverVersion.GitCommit
			output.ServerBuildDate = serverVersion.BuildTime
			output.UpdateRecommendation = updateRecommendation(version.Version, serverVersion.Version)
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printer.PrintJSON(out, output)
		}

		fmt.Fprintf(out, "studio version %s\n", output.StudioVersion)
		fmt.Fprintf(out, "Git commit: %s\n", output.GitCommit)
		fmt.Fprintf(out, "Build date: %s\n", output.BuildDate)

		if serverVersion != nil {
			fmt.Fprintf(out, "Server version: %s\n", output.ServerVersion)
			fmt.Fprintf(out, "Server git commit: %s\n", output.ServerGitCommit)
			fmt.Fprintf(out, "Server build date: %s\n", output.ServerBuildDate)

			if output.UpdateRecommendation != "" {
				fmt.Fprintln(out, "\n-------------------------------")
				fmt.Fprintln(out, output.UpdateRecommendation)
			}
		} else {
			fmt.Fprintf(out, "Error getting server version: %v\n", err)
		}
		return nil
	},
}

func updateRecommendation(cliVersion, serverVersion string) string {
	cv, sv := version.EnsureVPrefix(cliVersion), version.EnsureVPrefix(serverVersion)
	if !semver.IsValid(cv) || !semver.IsValid(sv) {
		return ""
	}
	switch semver.Compare(cv, sv) {
	case 1:
		return "CLI version is newer than server version. Consider updating the server."
	case -1:
		return "Server version is newer than CLI version. Consider updating the CLI."
	}
	return ""
}

func init() {
	VersionCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version information in JSON format")
}
