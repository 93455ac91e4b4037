package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/goalaudit/internal/cli/formatter"
	"github.com/alexanderramin/goalaudit/internal/domain"
	"github.com/alexanderramin/goalaudit/internal/repository"
	"github.com/spf13/cobra"
)

func newCaseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "case",
		Short: "List and select patient cases",
	}

	cmd.AddCommand(
		newCaseListCmd(app),
		newCaseUseCmd(app),
		newCaseCurrentCmd(app),
	)

	return cmd
}

func newCaseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List imported cases",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cases, err := app.Cases.ListCases(ctx)
			if err != nil {
				return err
			}

			currentID := ""
			if c, err := app.Cases.Current(ctx); err == nil {
				currentID = c.ID
			} else if !errors.Is(err, repository.ErrNoCurrentCase) {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCaseList(cases, currentID))
			return nil
		},
	}
}

func newCaseUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use [PATIENT_ID CASE_NAME | CASE_ID]",
		Short: "Make a case current for export",
		Long: "Make a case current for export. Pass a patient ID and case name, " +
			"a case ID or prefix, or nothing to pick from a list.",
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				c   *domain.Case
				err error
			)
			switch len(args) {
			case 2:
				c, err = app.Cases.SetCurrent(ctx, args[0], args[1])
			case 1:
				var id string
				if id, err = resolveCaseID(ctx, app, args[0]); err == nil {
					c, err = app.Cases.SetCurrentByID(ctx, id)
				}
			default:
				if !app.interactive() {
					return fmt.Errorf("case use needs PATIENT_ID CASE_NAME or a case ID when not on a terminal")
				}
				var id string
				form, ferr := caseSelectForm(ctx, app, &id)
				if ferr != nil {
					return ferr
				}
				if err = runForm(form); err == nil {
					c, err = app.Cases.SetCurrentByID(ctx, id)
				}
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Current case: %s %s\n",
				formatter.Bold(c.Patient.PatientID), formatter.StylePurple.Render(c.Name))
			return nil
		},
	}
}

func newCaseCurrentCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the current case",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Cases.Current(cmd.Context())
			if errors.Is(err, repository.ErrNoCurrentCase) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No current case. Use 'goalaudit case use' to select one."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCurrentCase(c))
			return nil
		},
	}
}
