package cli

import (
	"fmt"

	"github.com/alexanderramin/goalaudit/internal/app"
	"github.com/alexanderramin/goalaudit/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newGoalsCmd(a *App) *cobra.Command {
	var caseID string
	var skipFailed bool

	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Show the normalized clinical goals of a case without exporting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := preview(cmd, a, caseID, skipFailed)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResultTable(resp.Case, resp.Table))
			return nil
		},
	}

	cmd.Flags().StringVar(&caseID, "case", "", "Case ID or prefix (default: current case)")
	cmd.Flags().BoolVar(&skipFailed, "skip-failed-goals", false, "Leave out goals that cannot be evaluated")

	return cmd
}

func preview(cmd *cobra.Command, a *App, caseFlag string, skipFailed bool) (*app.PreviewResponse, error) {
	ctx := cmd.Context()
	id, err := resolveCaseID(ctx, a, caseFlag)
	if err != nil {
		return nil, err
	}
	return a.Export.Preview(ctx, app.PreviewRequest{CaseID: id, SkipFailedGoals: skipFailed})
}
