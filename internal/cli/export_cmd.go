package cli

import (
	"fmt"

	"github.com/alexanderramin/goalaudit/internal/app"
	"github.com/alexanderramin/goalaudit/internal/cli/formatter"
	"github.com/spf13/cobra"
)

type exportOptions struct {
	outDir     string
	caseID     string
	prompt     bool
	skipFailed bool
}

func (o *exportOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.outDir, "out", "", "Directory to write the export to (default: GOALAUDIT_EXPORT_DIR or .)")
	cmd.Flags().StringVar(&o.caseID, "case", "", "Case ID or prefix (default: current case)")
	cmd.Flags().BoolVar(&o.prompt, "prompt", false, "Ask for the destination directory")
	cmd.Flags().BoolVar(&o.skipFailed, "skip-failed-goals", false, "Leave out goals that cannot be evaluated instead of aborting")
}

func newExportCmd(app *App) *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the clinical goals CSV for a case",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, app, opts)
		},
	}
	opts.bind(cmd)

	return cmd
}

func runExport(cmd *cobra.Command, a *App, opts exportOptions) error {
	ctx := cmd.Context()

	caseID, err := resolveCaseID(ctx, a, opts.caseID)
	if err != nil {
		return err
	}

	req := app.NewExportRequest()
	req.CaseID = caseID
	req.OutputDir = opts.outDir
	req.SkipFailedGoals = opts.skipFailed

	if opts.prompt {
		if !a.interactive() {
			return fmt.Errorf("--prompt needs an interactive terminal")
		}
		dir := promptDefaultDir(a, req.OutputDir)
		if err := runForm(exportDirForm(&dir)); err != nil {
			return err
		}
		req.OutputDir = dir
	}

	resp, err := a.Export.Export(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatExportResult(resp))
	return nil
}

// promptDefaultDir is the directory the export would use without a prompt:
// --out, then the configured directory, then the working directory.
func promptDefaultDir(a *App, outDir string) string {
	switch {
	case outDir != "":
		return outDir
	case a.ExportDir != "":
		return a.ExportDir
	}
	return "."
}
