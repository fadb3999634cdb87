package onboarding

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mattewlondono22/smartagents-desktop/internal/cli/common"
	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
)

var plainOutput bool

var OnboardingCmd = &cobra.Command{
	Use:   "onboarding",
	Short: "Walk through the onboarding steps",
	Long:  `Shows the registry's onboarding checklist. Use --plain for non-interactive output.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.RegistryClient()
		if err != nil {
			return err
		}
		steps, err := c.OnboardingSteps(common.Context(cmd))
		if err != nil {
			return fmt.Errorf("failed to get onboarding steps: %w", err)
		}

		if plainOutput {
			PrintPlain(cmd.OutOrStdout(), steps)
			return nil
		}

		p := tea.NewProgram(NewModel(steps), tea.WithContext(common.Context(cmd)), tea.WithOutput(cmd.OutOrStdout()))
		_, err = p.Run()
		return err
	},
}

// PrintPlain writes the steps as a numbered list.
func PrintPlain(w io.Writer, steps []models.OnboardingStep) {
	for _, s := range steps {
		check := " "
		if s.Completed {
			check = "x"
		}
		fmt.Fprintf(w, "[%s] %d. %s\n%s\n", check, s.ID, s.Title, Wrap(s.Description, defaultWidth, 4))
	}
}

func init() {
	OnboardingCmd.Flags().BoolVar(&plainOutput, "plain", false, "Print the steps without the interactive view")
}
