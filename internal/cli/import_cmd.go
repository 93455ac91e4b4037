package cli

import (
	"fmt"

	"github.com/alexanderramin/goalaudit/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var use bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Load a case file (.json, .yaml or .yml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			result, err := app.Import.ImportCase(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Imported case %s for patient %s %s\n",
				formatter.StylePurple.Render(result.Case.Name),
				formatter.Bold(result.Case.Patient.PatientID),
				formatter.Dim(fmt.Sprintf("(%d plans, %d goals, %d DVHs)", result.PlanCount, result.GoalCount, result.DVHCount)),
			)

			if use {
				if _, err := app.Cases.SetCurrentByID(ctx, result.Case.ID); err != nil {
					return err
				}
				fmt.Fprintln(out, "Current case set.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&use, "use", false, "Make the imported case current")

	return cmd
}
