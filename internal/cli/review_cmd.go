package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newReviewCmd(app *App) *cobra.Command {
	var caseID string
	var skipFailed bool

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Browse the clinical goals of a case in an interactive table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("review needs an interactive terminal; use 'goalaudit goals' instead")
			}
			resp, err := preview(cmd, app, caseID, skipFailed)
			if err != nil {
				return err
			}
			return runProgram(newReviewModel(resp.Case, resp.Table))
		},
	}

	cmd.Flags().StringVar(&caseID, "case", "", "Case ID or prefix (default: current case)")
	cmd.Flags().BoolVar(&skipFailed, "skip-failed-goals", false, "Leave out goals that cannot be evaluated")

	return cmd
}

// runProgram runs a full-screen bubbletea program. Tests replace it.
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
